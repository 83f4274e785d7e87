package models

// Measure is a lead (direction) measure attached to a responsible person's goal
type Measure struct {
	BaseModel
	Responsible string    `json:"responsavel" gorm:"column:responsavel;size:200;not null;index:idx_measures_owner"`
	Goal        string    `json:"meta_crucial" gorm:"column:meta_crucial;type:text;not null;index:idx_measures_owner"`
	Text        string    `json:"medida_direcao" gorm:"column:medida_direcao;type:text;not null"`
	Frequency   Frequency `json:"frequencia" gorm:"column:frequencia;type:varchar(20);not null"`
}

// TableName returns the table name for Measure
func (Measure) TableName() string {
	return TableMeasures
}
