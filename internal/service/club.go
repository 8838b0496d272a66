package service

import (
	"encoding/json"
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

// ClubService handles club business logic
type ClubService struct {
	repo      repository.ClubRepositoryInterface
	validator *validator.Validate
}

// NewClubService creates a new club service
func NewClubService(repo repository.ClubRepositoryInterface, validator *validator.Validate) *ClubService {
	return &ClubService{repo: repo, validator: validator}
}

// CreateClubRequest represents the request to create a club
type CreateClubRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	AboutUs     string          `json:"about_us"`
	Vision      string          `json:"vision" validate:"max=500"`
	Mission     string          `json:"mission" validate:"max=500"`
	SocialMedia json.RawMessage `json:"social_media" swaggertype:"object"`
}

// UpdateClubRequest represents a partial club update
type UpdateClubRequest struct {
	Name        *string         `json:"name" validate:"omitempty,max=200"`
	AboutUs     *string         `json:"about_us"`
	Vision      *string         `json:"vision" validate:"omitempty,max=500"`
	Mission     *string         `json:"mission" validate:"omitempty,max=500"`
	SocialMedia json.RawMessage `json:"social_media" swaggertype:"object"`
}

// ClubResponse represents a club in API responses
type ClubResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	AboutUs     string          `json:"about_us"`
	Vision      string          `json:"vision"`
	Mission     string          `json:"mission"`
	SocialMedia json.RawMessage `json:"social_media" swaggertype:"object"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ClubListResponse represents a paginated list of clubs
type ClubListResponse struct {
	Clubs    []ClubResponse `json:"clubs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new club
func (s *ClubService) Create(req *CreateClubRequest) (*ClubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing club: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrClubExists
	}

	club := &models.Club{
		Name:        req.Name,
		AboutUs:     req.AboutUs,
		Vision:      req.Vision,
		Mission:     req.Mission,
		SocialMedia: req.SocialMedia,
	}
	if err := s.repo.Create(club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return toClubResponse(club), nil
}

// GetByID retrieves a club by ID
func (s *ClubService) GetByID(id uuid.UUID) (*ClubResponse, error) {
	club, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}
	return toClubResponse(club), nil
}

// GetAll retrieves clubs with pagination
func (s *ClubService) GetAll(page, pageSize int) (*ClubListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	clubs, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}

	responses := make([]ClubResponse, len(clubs))
	for i := range clubs {
		responses[i] = *toClubResponse(&clubs[i])
	}

	return &ClubListResponse{
		Clubs:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a club
func (s *ClubService) Update(id uuid.UUID, req *UpdateClubRequest) (*ClubResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	club, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	if req.Name != nil && *req.Name != club.Name {
		existing, err := s.repo.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing club: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrClubExists
		}
		club.Name = *req.Name
	}
	if req.AboutUs != nil {
		club.AboutUs = *req.AboutUs
	}
	if req.Vision != nil {
		club.Vision = *req.Vision
	}
	if req.Mission != nil {
		club.Mission = *req.Mission
	}
	if req.SocialMedia != nil {
		club.SocialMedia = req.SocialMedia
	}

	if err := s.repo.Update(club); err != nil {
		return nil, fmt.Errorf("failed to update club: %w", err)
	}

	return toClubResponse(club), nil
}

// Delete removes a club
func (s *ClubService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrClubNotFound
		}
		return fmt.Errorf("failed to get club: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
	}
	return nil
}

func toClubResponse(club *models.Club) *ClubResponse {
	return &ClubResponse{
		ID:          club.ID,
		Name:        club.Name,
		AboutUs:     club.AboutUs,
		Vision:      club.Vision,
		Mission:     club.Mission,
		SocialMedia: club.SocialMedia,
		CreatedAt:   club.CreatedAt,
		UpdatedAt:   club.UpdatedAt,
	}
}
