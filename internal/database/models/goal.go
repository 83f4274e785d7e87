package models

// Goal is the single crucial goal held by a responsible person
type Goal struct {
	BaseModel
	Team        string `json:"equipe" gorm:"column:equipe;size:100;not null;index"`
	Responsible string `json:"responsavel" gorm:"column:responsavel;size:200;not null;uniqueIndex:idx_goals_responsavel"`
	Description string `json:"meta_crucial" gorm:"column:meta_crucial;type:text;not null"`
	Indicator   string `json:"indicador" gorm:"column:indicador;type:text"`
	Target      string `json:"meta_final" gorm:"column:meta_final;type:text"`
	Deadline    string `json:"prazo" gorm:"column:prazo;size:100"`
}

// TableName returns the table name for Goal
func (Goal) TableName() string {
	return TableGoals
}
