package models

import "time"

// Event represents a club event. Image files live in object storage; only
// the public URL is stored here.
type Event struct {
	BaseModel
	Title       string    `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	Description string    `json:"description" gorm:"type:text"`
	Venue       string    `json:"venue" gorm:"size:200"`
	Date        time.Time `json:"date" gorm:"not null" validate:"required"`
	ImageURL    string    `json:"image_url" gorm:"size:300" validate:"omitempty,url"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
