package models

import "github.com/google/uuid"

// SocialMediaLink is a (platform, url) pair attached to a community.
// Links are replaced wholesale on community update.
type SocialMediaLink struct {
	BaseModel
	CommunityID uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Platform    string    `json:"platform" gorm:"not null;size:50" validate:"required,max=50"`
	URL         string    `json:"url" gorm:"not null;size:300" validate:"required,url"`
}

// TableName returns the table name for SocialMediaLink
func (SocialMediaLink) TableName() string {
	return "social_media_links"
}
