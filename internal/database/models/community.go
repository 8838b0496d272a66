package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Community represents one club sub-group with its leadership slots.
// TotalMembers is denormalized and recomputed from memberships after every
// create, update and join.
type Community struct {
	BaseModel
	ClubID       uuid.UUID       `json:"club_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string          `json:"name" gorm:"not null;size:200;index:idx_communities_club_name,unique" validate:"required,max=200"`
	Description  string          `json:"description" gorm:"type:text"`
	Email        string          `json:"email" gorm:"size:100" validate:"omitempty,email"`
	PhoneNumber  string          `json:"phone_number" gorm:"size:20"`
	FoundingDate *time.Time      `json:"founding_date"`
	IsRecruiting bool            `json:"is_recruiting" gorm:"not null;default:true"`
	TechStack    json.RawMessage `json:"tech_stack" gorm:"type:jsonb"`
	TotalMembers int64           `json:"total_members" gorm:"not null;default:0"`

	// Leadership slots. The corresponding ExecutiveRole rows are the source
	// of truth for the one-role-per-account rule.
	LeadID      *uuid.UUID `json:"community_lead" gorm:"type:uuid"`
	CoLeadID    *uuid.UUID `json:"co_lead" gorm:"type:uuid"`
	SecretaryID *uuid.UUID `json:"secretary" gorm:"type:uuid"`

	// Relationships
	Club            Club              `json:"-" gorm:"foreignKey:ClubID"`
	Lead            *User             `json:"lead_details,omitempty" gorm:"foreignKey:LeadID"`
	CoLead          *User             `json:"co_lead_details,omitempty" gorm:"foreignKey:CoLeadID"`
	Secretary       *User             `json:"secretary_details,omitempty" gorm:"foreignKey:SecretaryID"`
	SocialMedia     []SocialMediaLink `json:"social_media,omitempty" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
	Sessions        []CommunitySession `json:"sessions,omitempty" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
	Members         []Membership      `json:"members,omitempty" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
	ExecutiveRoles  []ExecutiveRole   `json:"-" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Community
func (Community) TableName() string {
	return "communities"
}

// SlotFor returns the user currently holding the given position, if any.
func (c *Community) SlotFor(position ExecutivePosition) *uuid.UUID {
	switch position {
	case PositionLead:
		return c.LeadID
	case PositionCoLead:
		return c.CoLeadID
	case PositionSecretary:
		return c.SecretaryID
	}
	return nil
}
