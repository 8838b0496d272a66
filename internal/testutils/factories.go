package testutils

import (
	"time"

	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenience
type FactorySet struct {
	User        *UserFactory
	Club        *ClubFactory
	Community   *CommunityFactory
	Membership  *MembershipFactory
	Passcode    *PasscodeFactory
	Event       *EventFactory
	Testimonial *TestimonialFactory
	Partner     *PartnerFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        &UserFactory{},
		Club:        &ClubFactory{},
		Community:   &CommunityFactory{},
		Membership:  &MembershipFactory{},
		Passcode:    &PasscodeFactory{},
		Event:       &EventFactory{},
		Testimonial: &TestimonialFactory{},
		Partner:     &PartnerFactory{},
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a test User with default values. Username and email carry a
// UUID fragment so repeated calls don't collide on the unique indexes.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	tag := id.String()[:8]
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Username:     "user_" + tag,
		Email:        "user_" + tag + "@test.edu",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		FirstName:    "Test",
		LastName:     "User",
		Course:       "Computer Science",
		IsActive:     true,
	}
}

// WithEmail sets a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// Inactive creates a user that has not verified yet
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	id := uuid.New()
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Club " + id.String()[:8],
		AboutUs: "A test club",
		Vision:  "Test vision",
		Mission: "Test mission",
	}
}

// CommunityFactory provides methods to create test Community data
type CommunityFactory struct{}

// Create creates a test Community. ClubID must be set by the caller.
func (f *CommunityFactory) Create() *models.Community {
	id := uuid.New()
	return &models.Community{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Community " + id.String()[:8],
		Description:  "A test community",
		Email:        "community@test.edu",
		IsRecruiting: true,
	}
}

// WithClub sets the parent club
func (f *CommunityFactory) WithClub(clubID uuid.UUID) *models.Community {
	community := f.Create()
	community.ClubID = clubID
	return community
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// Create creates a test Membership. CommunityID must be set by the caller.
func (f *MembershipFactory) Create() *models.Membership {
	id := uuid.New()
	return &models.Membership{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Test Member",
		Email:     "member_" + id.String()[:8] + "@test.edu",
	}
}

// WithEmail sets a custom email
func (f *MembershipFactory) WithEmail(email string) *models.Membership {
	m := f.Create()
	m.Email = email
	return m
}

// PasscodeFactory provides methods to create test Passcode data
type PasscodeFactory struct{}

// Create creates an unverified, unexpired passcode for the given user
func (f *PasscodeFactory) Create(userID uuid.UUID) *models.Passcode {
	return &models.Passcode{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Code:      "123456",
		ExpiresAt: time.Now().Add(models.PasscodeTTL),
		Verified:  false,
	}
}

// Expired creates a passcode that expired a minute ago
func (f *PasscodeFactory) Expired(userID uuid.UUID) *models.Passcode {
	p := f.Create(userID)
	p.ExpiresAt = time.Now().Add(-time.Minute)
	return p
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// Create creates a test Event with default values
func (f *EventFactory) Create() *models.Event {
	return &models.Event{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Test Event",
		Venue:     "Main Hall",
		Date:      time.Now().Add(7 * 24 * time.Hour),
	}
}

// TestimonialFactory provides methods to create test Testimonial data
type TestimonialFactory struct{}

// Create creates an unapproved test Testimonial
func (f *TestimonialFactory) Create() *models.Testimonial {
	return &models.Testimonial{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		AuthorName: "Test Author",
		Role:       "Alumni",
		Content:    "Great club!",
		Approved:   false,
	}
}

// PartnerFactory provides methods to create test Partner data
type PartnerFactory struct{}

// Create creates a test Partner with default values
func (f *PartnerFactory) Create() *models.Partner {
	id := uuid.New()
	return &models.Partner{
		BaseModel:  models.BaseModel{ID: id},
		Name:       "Test Partner " + id.String()[:8],
		WebsiteURL: "https://partner.test",
	}
}
