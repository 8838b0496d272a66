package models

import (
	"time"

	"github.com/google/uuid"
)

// ExecutivePosition enumerates the three leadership slots of a community
type ExecutivePosition string

const (
	PositionLead      ExecutivePosition = "LEAD"
	PositionCoLead    ExecutivePosition = "CO_LEAD"
	PositionSecretary ExecutivePosition = "SECRETARY"
)

// Positions lists all executive positions in slot order
var Positions = []ExecutivePosition{PositionLead, PositionCoLead, PositionSecretary}

// ExecutiveRole is an (account, community, position) triple. The unique index
// on UserID enforces the system-wide one-role-per-account rule at the store
// level; the coordinator still checks first so conflicts surface with the
// offending account named. Reassignment is delete-then-create, never update.
type ExecutiveRole struct {
	BaseModel
	UserID      uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	CommunityID uuid.UUID         `json:"community_id" gorm:"type:uuid;not null;index"`
	Position    ExecutivePosition `json:"position" gorm:"not null;size:10"`
	JoinedDate  time.Time         `json:"joined_date"`

	// Relationships
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Community Community `json:"-" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ExecutiveRole
func (ExecutiveRole) TableName() string {
	return "executive_roles"
}
