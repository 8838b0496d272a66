package models

import "github.com/google/uuid"

// Comment is a discussion entry on an event. A comment with a non-nil parent
// is a reply; replies always belong to the same event as their parent.
type Comment struct {
	BaseModel
	EventID  uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID  `json:"author_id" gorm:"type:uuid;not null;index"`
	ParentID *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	Content  string     `json:"content" gorm:"type:text;not null" validate:"required"`

	// Relationships
	Event   Event     `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Author  User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Replies []Comment `json:"replies,omitempty" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
