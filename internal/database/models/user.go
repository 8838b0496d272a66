package models

// User represents a club member account. Accounts are created inactive at
// registration and activated once the emailed passcode is verified.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"not null;size:100;uniqueIndex" validate:"required,min=3,max=100"`
	Email        string `json:"email" gorm:"not null;size:100;uniqueIndex" validate:"required,email,max=100"`
	PasswordHash string `json:"-" gorm:"not null;size:128"`
	FirstName    string `json:"first_name" gorm:"size:100"`
	LastName     string `json:"last_name" gorm:"size:100"`
	Course       string `json:"course" gorm:"size:100"`
	IsActive     bool   `json:"is_active" gorm:"not null;default:false"`

	// Relationships
	Passcodes      []Passcode      `json:"-" gorm:"foreignKey:UserID"`
	ExecutiveRoles []ExecutiveRole `json:"executive_roles,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
