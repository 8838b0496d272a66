package models

import (
	"time"

	"github.com/google/uuid"
)

// PasscodeTTL is how long a freshly issued passcode stays valid
const PasscodeTTL = 10 * time.Minute

// Passcode is a short-lived 6-digit code proving control of an email
// address. Issuing a new passcode soft-invalidates earlier unverified ones
// by forcing their expiry into the past; rows are not deleted until the
// consuming flow (password reset) cleans up after use.
type Passcode struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	Code      string    `json:"-" gorm:"not null;size:6"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	Verified  bool      `json:"verified" gorm:"not null;default:false"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Passcode
func (Passcode) TableName() string {
	return "passcodes"
}

// Expired reports whether the passcode is past its expiry at the given time.
func (p *Passcode) Expired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}
