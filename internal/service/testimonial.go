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

// TestimonialService handles testimonial business logic
type TestimonialService struct {
	repo      repository.TestimonialRepositoryInterface
	validator *validator.Validate
}

// NewTestimonialService creates a new testimonial service
func NewTestimonialService(repo repository.TestimonialRepositoryInterface, validator *validator.Validate) *TestimonialService {
	return &TestimonialService{repo: repo, validator: validator}
}

// CreateTestimonialRequest represents the request to create a testimonial
type CreateTestimonialRequest struct {
	AuthorName string `json:"author_name" validate:"required,max=200"`
	Role       string `json:"role" validate:"max=100"`
	Content    string `json:"content" validate:"required"`
}

// UpdateTestimonialRequest represents a partial testimonial update
type UpdateTestimonialRequest struct {
	AuthorName *string `json:"author_name" validate:"omitempty,max=200"`
	Role       *string `json:"role" validate:"omitempty,max=100"`
	Content    *string `json:"content"`
	Approved   *bool   `json:"approved"`
}

// TestimonialResponse represents a testimonial in API responses
type TestimonialResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Approved   bool      `json:"approved"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TestimonialListResponse represents a paginated list of testimonials
type TestimonialListResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create creates a new, unapproved testimonial
func (s *TestimonialService) Create(req *CreateTestimonialRequest) (*TestimonialResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	testimonial := &models.Testimonial{
		AuthorName: req.AuthorName,
		Role:       req.Role,
		Content:    req.Content,
		Approved:   false,
	}
	if err := s.repo.Create(testimonial); err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return toTestimonialResponse(testimonial), nil
}

// GetByID retrieves a testimonial by ID
func (s *TestimonialService) GetByID(id uuid.UUID) (*TestimonialResponse, error) {
	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return toTestimonialResponse(testimonial), nil
}

// GetAll retrieves testimonials with pagination. When approvedOnly is true
// only approved entries are returned, which is what the public site uses.
func (s *TestimonialService) GetAll(approvedOnly bool, page, pageSize int) (*TestimonialListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	testimonials, total, err := s.repo.GetAll(approvedOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get testimonials: %w", err)
	}

	responses := make([]TestimonialResponse, len(testimonials))
	for i := range testimonials {
		responses[i] = *toTestimonialResponse(&testimonials[i])
	}

	return &TestimonialListResponse{
		Testimonials: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// Update applies a partial update, including the approval flag
func (s *TestimonialService) Update(id uuid.UUID, req *UpdateTestimonialRequest) (*TestimonialResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	testimonial, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	if req.AuthorName != nil {
		testimonial.AuthorName = *req.AuthorName
	}
	if req.Role != nil {
		testimonial.Role = *req.Role
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.Approved != nil {
		testimonial.Approved = *req.Approved
	}

	if err := s.repo.Update(testimonial); err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	return toTestimonialResponse(testimonial), nil
}

// Delete removes a testimonial
func (s *TestimonialService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTestimonialNotFound
		}
		return fmt.Errorf("failed to get testimonial: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	return nil
}

func toTestimonialResponse(testimonial *models.Testimonial) *TestimonialResponse {
	return &TestimonialResponse{
		ID:         testimonial.ID,
		AuthorName: testimonial.AuthorName,
		Role:       testimonial.Role,
		Content:    testimonial.Content,
		Approved:   testimonial.Approved,
		CreatedAt:  testimonial.CreatedAt,
		UpdatedAt:  testimonial.UpdatedAt,
	}
}
