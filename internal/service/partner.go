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

// PartnerService handles partner business logic
type PartnerService struct {
	repo      repository.PartnerRepositoryInterface
	validator *validator.Validate
}

// NewPartnerService creates a new partner service
func NewPartnerService(repo repository.PartnerRepositoryInterface, validator *validator.Validate) *PartnerService {
	return &PartnerService{repo: repo, validator: validator}
}

// CreatePartnerRequest represents the request to create a partner
type CreatePartnerRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	WebsiteURL  string `json:"website_url" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

// UpdatePartnerRequest represents a partial partner update
type UpdatePartnerRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	WebsiteURL  *string `json:"website_url" validate:"omitempty,url"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,url"`
}

// PartnerResponse represents a partner in API responses
type PartnerResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"website_url"`
	LogoURL     string    `json:"logo_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PartnerListResponse represents a paginated list of partners
type PartnerListResponse struct {
	Partners []PartnerResponse `json:"partners"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new partner
func (s *PartnerService) Create(req *CreatePartnerRequest) (*PartnerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing partner: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPartnerExists
	}

	partner := &models.Partner{
		Name:        req.Name,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
		LogoURL:     req.LogoURL,
	}
	if err := s.repo.Create(partner); err != nil {
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}

	return toPartnerResponse(partner), nil
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(id uuid.UUID) (*PartnerResponse, error) {
	partner, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return toPartnerResponse(partner), nil
}

// GetAll retrieves partners with pagination
func (s *PartnerService) GetAll(page, pageSize int) (*PartnerListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	partners, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get partners: %w", err)
	}

	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = *toPartnerResponse(&partners[i])
	}

	return &PartnerListResponse{
		Partners: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a partner
func (s *PartnerService) Update(id uuid.UUID, req *UpdatePartnerRequest) (*PartnerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	partner, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	if req.Name != nil && *req.Name != partner.Name {
		existing, err := s.repo.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing partner: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrPartnerExists
		}
		partner.Name = *req.Name
	}
	if req.Description != nil {
		partner.Description = *req.Description
	}
	if req.WebsiteURL != nil {
		partner.WebsiteURL = *req.WebsiteURL
	}
	if req.LogoURL != nil {
		partner.LogoURL = *req.LogoURL
	}

	if err := s.repo.Update(partner); err != nil {
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}

	return toPartnerResponse(partner), nil
}

// Delete removes a partner
func (s *PartnerService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPartnerNotFound
		}
		return fmt.Errorf("failed to get partner: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete partner: %w", err)
	}
	return nil
}

func toPartnerResponse(partner *models.Partner) *PartnerResponse {
	return &PartnerResponse{
		ID:          partner.ID,
		Name:        partner.Name,
		Description: partner.Description,
		WebsiteURL:  partner.WebsiteURL,
		LogoURL:     partner.LogoURL,
		CreatedAt:   partner.CreatedAt,
		UpdatedAt:   partner.UpdatedAt,
	}
}
