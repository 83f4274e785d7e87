package models

// Team represents a team that owns crucial goals
type Team struct {
	BaseModel
	Name string `json:"equipe" gorm:"column:equipe;size:100;not null;uniqueIndex:idx_teams_equipe" validate:"required,max=100"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return TableTeams
}
