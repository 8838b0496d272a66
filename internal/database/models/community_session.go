package models

import "github.com/google/uuid"

// MeetingType enumerates how a recurring community session is held
type MeetingType string

const (
	MeetingPhysical MeetingType = "physical"
	MeetingOnline   MeetingType = "online"
	MeetingHybrid   MeetingType = "hybrid"
)

// CommunitySession is a recurring weekly meeting slot for a community.
// Sessions are replaced wholesale on community update, never diffed.
type CommunitySession struct {
	BaseModel
	CommunityID uuid.UUID   `json:"-" gorm:"type:uuid;not null;index"`
	Day         string      `json:"day" gorm:"not null;size:10" validate:"required"`
	StartTime   string      `json:"start_time" gorm:"not null;size:8" validate:"required"`
	EndTime     string      `json:"end_time" gorm:"not null;size:8" validate:"required"`
	MeetingType MeetingType `json:"meeting_type" gorm:"not null;size:10" validate:"required,oneof=physical online hybrid"`
	Location    string      `json:"location" gorm:"size:200"`
}

// TableName returns the table name for CommunitySession
func (CommunitySession) TableName() string {
	return "community_sessions"
}
