package models

// User represents a person registered in a team; the email is the identity
type User struct {
	BaseModel
	Name  string `json:"nome" gorm:"column:nome;size:200;not null" validate:"required,max=200"`
	Email string `json:"email" gorm:"column:email;size:255;not null;uniqueIndex:idx_users_email" validate:"required,email,max=255"`
	Team  string `json:"equipe" gorm:"column:equipe;size:100;not null;index" validate:"required,max=100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return TableUsers
}
