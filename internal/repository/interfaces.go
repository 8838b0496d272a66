package repository

import (
	"time"

	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	Create(club *models.Club) error
	GetByID(id uuid.UUID) (*models.Club, error)
	GetByName(name string) (*models.Club, error)
	GetAll(limit, offset int) ([]models.Club, int64, error)
	Update(club *models.Club) error
	Delete(id uuid.UUID) error
}

// CommunityRepositoryInterface defines the interface for community repository operations
type CommunityRepositoryInterface interface {
	CreateWithRoles(community *models.Community, roles []models.ExecutiveRole) error
	UpdateWithRoles(community *models.Community, removeRoles []models.ExecutiveRole, addRoles []models.ExecutiveRole, socials []models.SocialMediaLink, replaceSocials bool, sessions []models.CommunitySession, replaceSessions bool) error
	Join(communityID uuid.UUID, membership *models.Membership, cap int) error
	RecomputeTotalMembers(communityID uuid.UUID) (int64, error)
	GetByID(id uuid.UUID) (*models.Community, error)
	GetWithDetails(id uuid.UUID) (*models.Community, error)
	GetByName(clubID uuid.UUID, name string) (*models.Community, error)
	SearchByName(name string) (*models.Community, error)
	GetAll(limit, offset int) ([]models.Community, int64, error)
	Delete(id uuid.UUID) error
}

// ExecutiveRoleRepositoryInterface defines the interface for executive role lookups
type ExecutiveRoleRepositoryInterface interface {
	ExistsForUser(userID uuid.UUID) (bool, error)
	ExistsForUserExcludingCommunity(userID, communityID uuid.UUID) (bool, error)
	GetByUser(userID uuid.UUID) (*models.ExecutiveRole, error)
	GetByCommunity(communityID uuid.UUID) ([]models.ExecutiveRole, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	GetByCommunity(communityID uuid.UUID, limit, offset int) ([]models.Membership, int64, error)
	Delete(communityID, id uuid.UUID) error
}

// PasscodeRepositoryInterface defines the interface for passcode repository operations
type PasscodeRepositoryInterface interface {
	Create(passcode *models.Passcode) error
	InvalidateUnverified(userID uuid.UUID, now time.Time) error
	GetLatestUnverified(userID uuid.UUID) (*models.Passcode, error)
	GetLatestVerified(userID uuid.UUID) (*models.Passcode, error)
	Update(passcode *models.Passcode) error
	Delete(id uuid.UUID) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetAll(limit, offset int) ([]models.Event, int64, error)
	Update(event *models.Event) error
	Delete(id uuid.UUID) error
}

// CommentRepositoryInterface defines the interface for comment repository operations
type CommentRepositoryInterface interface {
	Create(comment *models.Comment) error
	GetByID(id uuid.UUID) (*models.Comment, error)
	GetByEvent(eventID uuid.UUID, limit, offset int) ([]models.Comment, int64, error)
	GetReplies(parentID uuid.UUID, limit, offset int) ([]models.Comment, int64, error)
	Update(comment *models.Comment) error
	Delete(id uuid.UUID) error
}

// BlogRepositoryInterface defines the interface for blog repository operations
type BlogRepositoryInterface interface {
	Create(blog *models.Blog) error
	GetByID(id uuid.UUID) (*models.Blog, error)
	GetByAuthor(authorID uuid.UUID, search string, limit, offset int) ([]models.Blog, int64, error)
	Update(blog *models.Blog) error
	Delete(id uuid.UUID) error
}

// SubscriberRepositoryInterface defines the interface for subscriber repository operations
type SubscriberRepositoryInterface interface {
	Create(subscriber *models.Subscriber) error
	GetByEmail(email string) (*models.Subscriber, error)
	GetAllEmails() ([]string, error)
}

// FeedbackRepositoryInterface defines the interface for feedback repository operations
type FeedbackRepositoryInterface interface {
	Create(feedback *models.Feedback) error
	GetByID(id uuid.UUID) (*models.Feedback, error)
	GetAll(limit, offset int) ([]models.Feedback, int64, error)
	Delete(id uuid.UUID) error
}

// TestimonialRepositoryInterface defines the interface for testimonial repository operations
type TestimonialRepositoryInterface interface {
	Create(testimonial *models.Testimonial) error
	GetByID(id uuid.UUID) (*models.Testimonial, error)
	GetAll(approvedOnly bool, limit, offset int) ([]models.Testimonial, int64, error)
	Update(testimonial *models.Testimonial) error
	Delete(id uuid.UUID) error
}

// PartnerRepositoryInterface defines the interface for partner repository operations
type PartnerRepositoryInterface interface {
	Create(partner *models.Partner) error
	GetByID(id uuid.UUID) (*models.Partner, error)
	GetByName(name string) (*models.Partner, error)
	GetAll(limit, offset int) ([]models.Partner, int64, error)
	Update(partner *models.Partner) error
	Delete(id uuid.UUID) error
}
