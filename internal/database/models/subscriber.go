package models

// Subscriber is one newsletter recipient. The unique index rejects duplicate
// subscriptions at the store level.
type Subscriber struct {
	BaseModel
	Email string `json:"email" gorm:"not null;size:100;uniqueIndex" validate:"required,email,max=100"`
}

// TableName returns the table name for Subscriber
func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}
