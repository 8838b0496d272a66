package models

// Testimonial is a quote displayed on the club site once approved
type Testimonial struct {
	BaseModel
	AuthorName string `json:"author_name" gorm:"not null;size:200" validate:"required,max=200"`
	Role       string `json:"role" gorm:"size:100" validate:"max=100"`
	Content    string `json:"content" gorm:"type:text;not null" validate:"required"`
	Approved   bool   `json:"approved" gorm:"not null;default:false"`
}

// TableName returns the table name for Testimonial
func (Testimonial) TableName() string {
	return "testimonials"
}
