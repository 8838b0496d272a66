package service

import (
	"errors"
	"fmt"
	"html"
	"time"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/logger"
	"club-portal-backend/internal/mailer"
	"club-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterService handles newsletter subscriptions, bulk sends and the
// public contact form. Delivery failures are logged and surfaced, never
// retried.
type NewsletterService struct {
	repo         repository.SubscriberRepositoryInterface
	sender       mailer.Sender
	contactEmail string
	validator    *validator.Validate
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(
	repo repository.SubscriberRepositoryInterface,
	sender mailer.Sender,
	contactEmail string,
	validator *validator.Validate,
) *NewsletterService {
	return &NewsletterService{
		repo:         repo,
		sender:       sender,
		contactEmail: contactEmail,
		validator:    validator,
	}
}

// SubscribeRequest represents a newsletter subscription
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=100"`
}

// SubscriberResponse represents a subscriber in API responses
type SubscriberResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SendNewsletterRequest represents a bulk newsletter send
type SendNewsletterRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// SendNewsletterResponse reports how the bulk send went
type SendNewsletterResponse struct {
	Recipients int `json:"recipients"`
	Failed     int `json:"failed"`
}

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Message string `json:"message" validate:"required"`
}

// Subscribe registers an email for the newsletter, rejecting duplicates
func (s *NewsletterService) Subscribe(req *SubscribeRequest) (*SubscriberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check subscriber: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSubscriberExists
	}

	subscriber := &models.Subscriber{Email: req.Email}
	if err := s.repo.Create(subscriber); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrSubscriberExists
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &SubscriberResponse{
		ID:        subscriber.ID,
		Email:     subscriber.Email,
		CreatedAt: subscriber.CreatedAt,
	}, nil
}

// Send delivers the newsletter to every subscriber, one message per address.
// Addresses that fail are counted and the first failure is surfaced as a
// delivery error alongside the partial result.
func (s *NewsletterService) Send(req *SendNewsletterRequest) (*SendNewsletterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	emails, err := s.repo.GetAllEmails()
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	resp := &SendNewsletterResponse{}
	var firstErr error
	for _, addr := range emails {
		if err := s.sender.Send(addr, req.Subject, req.Message); err != nil {
			resp.Failed++
			if firstErr == nil {
				firstErr = err
			}
			logger.New().WithFields(map[string]interface{}{
				"email": addr,
				"error": err.Error(),
			}).Error("newsletter delivery failed")
			continue
		}
		resp.Recipients++
	}

	if firstErr != nil {
		return resp, apperrors.NewDeliveryError(firstErr)
	}
	return resp, nil
}

// Contact forwards a contact form submission to the club's contact address
func (s *NewsletterService) Contact(req *ContactRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	subject := fmt.Sprintf("Contact message from %s", req.Name)
	body := fmt.Sprintf(
		`<p>From: %s &lt;%s&gt;</p><p>%s</p>`,
		html.EscapeString(req.Name), html.EscapeString(req.Email), html.EscapeString(req.Message),
	)

	if err := s.sender.Send(s.contactEmail, subject, body); err != nil {
		logger.New().WithFields(map[string]interface{}{
			"from":  req.Email,
			"error": err.Error(),
		}).Error("contact message delivery failed")
		return apperrors.NewDeliveryError(err)
	}
	return nil
}
