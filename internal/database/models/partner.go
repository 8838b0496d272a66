package models

// Partner is an organization partnered with the club
type Partner struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`
	WebsiteURL  string `json:"website_url" gorm:"size:300" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" gorm:"size:300" validate:"omitempty,url"`
}

// TableName returns the table name for Partner
func (Partner) TableName() string {
	return "partners"
}
