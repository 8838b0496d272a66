package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines the interface for auth operations
type AuthServiceInterface interface {
	Register(req *RegisterRequest) (*UserResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	VerifyOTP(req *VerifyOTPRequest) (*VerifyOTPResponse, error)
	RequestPasswordReset(req *PasswordResetRequest) error
	ResetPassword(req *ResetPasswordRequest) error
}

// PasscodeServiceInterface defines the interface for passcode operations
type PasscodeServiceInterface interface {
	Issue(user *models.User) (*models.Passcode, error)
	Verify(user *models.User, submittedCode string) (*models.Passcode, error)
	ConsumeVerified(user *models.User) error
}

// CommunityServiceInterface defines the interface for community operations
type CommunityServiceInterface interface {
	Create(req *CreateCommunityRequest) (*CommunityResponse, error)
	Update(id uuid.UUID, req *UpdateCommunityRequest) (*CommunityResponse, error)
	Join(communityID uuid.UUID, req *JoinCommunityRequest) (*CommunityResponse, error)
	GetByID(id uuid.UUID) (*CommunityResponse, error)
	GetAll(page, pageSize int) (*CommunityListResponse, error)
	SearchByName(name string) (*CommunityResponse, error)
	GetMembers(communityID uuid.UUID, page, pageSize int) (*MemberListResponse, error)
	RemoveMember(communityID, memberID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// ClubServiceInterface defines the interface for club operations
type ClubServiceInterface interface {
	Create(req *CreateClubRequest) (*ClubResponse, error)
	GetByID(id uuid.UUID) (*ClubResponse, error)
	GetAll(page, pageSize int) (*ClubListResponse, error)
	Update(id uuid.UUID, req *UpdateClubRequest) (*ClubResponse, error)
	Delete(id uuid.UUID) error
}

// EventServiceInterface defines the interface for event operations
type EventServiceInterface interface {
	Create(req *CreateEventRequest) (*EventResponse, error)
	GetByID(id uuid.UUID) (*EventResponse, error)
	GetAll(page, pageSize int) (*EventListResponse, error)
	Update(id uuid.UUID, req *UpdateEventRequest) (*EventResponse, error)
	Delete(id uuid.UUID) error
}

// CommentServiceInterface defines the interface for event comment operations
type CommentServiceInterface interface {
	Create(eventID, authorID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error)
	CreateReply(parentID, authorID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error)
	ListByEvent(eventID uuid.UUID, page, pageSize int) (*CommentListResponse, error)
	GetReplies(parentID uuid.UUID, page, pageSize int) (*CommentListResponse, error)
	GetByID(id uuid.UUID) (*CommentResponse, error)
	Update(id, authorID uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error)
	Delete(id, authorID uuid.UUID) error
}

// BlogServiceInterface defines the interface for blog operations
type BlogServiceInterface interface {
	Create(authorID uuid.UUID, req *CreateBlogRequest) (*BlogResponse, error)
	GetByAuthor(authorID uuid.UUID, search string, page, pageSize int) (*BlogListResponse, error)
	Update(id, authorID uuid.UUID, req *UpdateBlogRequest) (*BlogResponse, error)
	Delete(id, authorID uuid.UUID) error
}

// NewsletterServiceInterface defines the interface for newsletter operations
type NewsletterServiceInterface interface {
	Subscribe(req *SubscribeRequest) (*SubscriberResponse, error)
	Send(req *SendNewsletterRequest) (*SendNewsletterResponse, error)
	Contact(req *ContactRequest) error
}

// FeedbackServiceInterface defines the interface for feedback operations
type FeedbackServiceInterface interface {
	Create(req *CreateFeedbackRequest) (*FeedbackResponse, error)
	GetByID(id uuid.UUID) (*FeedbackResponse, error)
	GetAll(page, pageSize int) (*FeedbackListResponse, error)
	Delete(id uuid.UUID) error
}

// TestimonialServiceInterface defines the interface for testimonial operations
type TestimonialServiceInterface interface {
	Create(req *CreateTestimonialRequest) (*TestimonialResponse, error)
	GetByID(id uuid.UUID) (*TestimonialResponse, error)
	GetAll(approvedOnly bool, page, pageSize int) (*TestimonialListResponse, error)
	Update(id uuid.UUID, req *UpdateTestimonialRequest) (*TestimonialResponse, error)
	Delete(id uuid.UUID) error
}

// PartnerServiceInterface defines the interface for partner operations
type PartnerServiceInterface interface {
	Create(req *CreatePartnerRequest) (*PartnerResponse, error)
	GetByID(id uuid.UUID) (*PartnerResponse, error)
	GetAll(page, pageSize int) (*PartnerListResponse, error)
	Update(id uuid.UUID, req *UpdatePartnerRequest) (*PartnerResponse, error)
	Delete(id uuid.UUID) error
}
