package models

import "encoding/json"

// Club represents the parent club that communities belong to
type Club struct {
	BaseModel
	Name        string          `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,max=200"`
	AboutUs     string          `json:"about_us" gorm:"type:text"`
	Vision      string          `json:"vision" gorm:"size:500" validate:"max=500"`
	Mission     string          `json:"mission" gorm:"size:500" validate:"max=500"`
	SocialMedia json.RawMessage `json:"social_media" gorm:"type:jsonb"`

	// Relationships
	Communities []Community `json:"communities,omitempty" gorm:"foreignKey:ClubID"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}
