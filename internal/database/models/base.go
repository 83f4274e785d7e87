package models

// BaseModel provides the surrogate row id shared by every 4DX table.
// The id is assigned by the store; it is omitted from insert payloads.
type BaseModel struct {
	ID int64 `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
}

// Physical table names. The logical names used across the API are
// Teams, Users, Goals, Measures and WeeklyRecords.
const (
	TableTeams         = "EQUIPES_4DX"
	TableUsers         = "USUARIOS_4DX"
	TableGoals         = "METAS_CRUCIAIS_4DX"
	TableMeasures      = "MEDIDAS_DIRECAO_4DX"
	TableWeeklyRecords = "SEMANAS_4DX"
)
