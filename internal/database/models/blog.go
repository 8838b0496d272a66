package models

import "github.com/google/uuid"

// Blog is a member-authored post. Image files live in object storage; only
// the public URL is stored here. Only the author may update or delete a post.
type Blog struct {
	BaseModel
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null;index"`
	Title    string    `json:"title" gorm:"not null;size:500" validate:"required,max=500"`
	Content  string    `json:"content" gorm:"type:text;not null" validate:"required"`
	ImageURL string    `json:"image_url" gorm:"size:300" validate:"omitempty,url"`

	// Relationships
	Author User `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Blog
func (Blog) TableName() string {
	return "blogs"
}
