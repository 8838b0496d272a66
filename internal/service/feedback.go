package service

import (
	"errors"
	"fmt"
	"time"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"
	"club-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackService handles feedback submissions
type FeedbackService struct {
	repo      repository.FeedbackRepositoryInterface
	validator *validator.Validate
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(repo repository.FeedbackRepositoryInterface, validator *validator.Validate) *FeedbackService {
	return &FeedbackService{repo: repo, validator: validator}
}

// CreateFeedbackRequest represents a feedback submission
type CreateFeedbackRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"max=200"`
	Comment string `json:"comment" validate:"required"`
}

// FeedbackResponse represents feedback in API responses
type FeedbackResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedbackListResponse represents a paginated list of feedback
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Create stores a feedback submission
func (s *FeedbackService) Create(req *CreateFeedbackRequest) (*FeedbackResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	feedback := &models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Comment: req.Comment,
	}
	if err := s.repo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return toFeedbackResponse(feedback), nil
}

// GetByID retrieves a feedback entry by ID
func (s *FeedbackService) GetByID(id uuid.UUID) (*FeedbackResponse, error) {
	feedback, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return toFeedbackResponse(feedback), nil
}

// GetAll retrieves feedback entries with pagination
func (s *FeedbackService) GetAll(page, pageSize int) (*FeedbackListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}

	responses := make([]FeedbackResponse, len(entries))
	for i := range entries {
		responses[i] = *toFeedbackResponse(&entries[i])
	}

	return &FeedbackListResponse{
		Feedback: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Delete removes a feedback entry
func (s *FeedbackService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFeedbackNotFound
		}
		return fmt.Errorf("failed to get feedback: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return nil
}

func toFeedbackResponse(feedback *models.Feedback) *FeedbackResponse {
	return &FeedbackResponse{
		ID:        feedback.ID,
		Name:      feedback.Name,
		Email:     feedback.Email,
		Subject:   feedback.Subject,
		Comment:   feedback.Comment,
		CreatedAt: feedback.CreatedAt,
	}
}
