package models

// Feedback is a free-form message submitted through the public site
type Feedback struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email   string `json:"email" gorm:"not null;size:100" validate:"required,email"`
	Subject string `json:"subject" gorm:"size:200" validate:"max=200"`
	Comment string `json:"comment" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for Feedback
func (Feedback) TableName() string {
	return "feedbacks"
}
