package models

// WeeklyRecord captures, for one person, goal and week, whether the previous
// commitment was completed and what the next commitment is. Rows are never
// updated; re-submissions append.
type WeeklyRecord struct {
	BaseModel
	Responsible string     `json:"responsavel" gorm:"column:responsavel;size:200;not null;index:idx_weeks_lookup"`
	Goal        string     `json:"meta_crucial" gorm:"column:meta_crucial;type:text;not null;index:idx_weeks_lookup"`
	WeekStart   string     `json:"semana_ref" gorm:"column:semana_ref;size:10;not null;index:idx_weeks_lookup"`
	Completed   Completion `json:"concluido" gorm:"column:concluido;type:varchar(3);not null;default:''"`
	Plan        string     `json:"planejado" gorm:"column:planejado;type:text"`
}

// TableName returns the table name for WeeklyRecord
func (WeeklyRecord) TableName() string {
	return TableWeeklyRecords
}
