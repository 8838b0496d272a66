package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipCap is the maximum number of communities one email may belong to
const MembershipCap = 3

// Membership is a (community, email) pair. The composite unique index
// prevents duplicate joins; the per-email cap is enforced by the join
// coordinator inside a transaction.
type Membership struct {
	BaseModel
	CommunityID uuid.UUID `json:"community_id" gorm:"type:uuid;not null;index:idx_memberships_community_email,unique"`
	Name        string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email       string    `json:"email" gorm:"not null;size:100;index;index:idx_memberships_community_email,unique" validate:"required,email"`
	JoinedAt    time.Time `json:"joined_at" gorm:"autoCreateTime"`

	// Relationships
	Community Community `json:"-" gorm:"foreignKey:CommunityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
