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

// BlogService handles blog post business logic. Posts are private to their
// author: listing is scoped to the caller and writes require ownership.
type BlogService struct {
	repo      repository.BlogRepositoryInterface
	validator *validator.Validate
}

// NewBlogService creates a new blog service
func NewBlogService(repo repository.BlogRepositoryInterface, validator *validator.Validate) *BlogService {
	return &BlogService{repo: repo, validator: validator}
}

// CreateBlogRequest represents the request to create a blog post
type CreateBlogRequest struct {
	Title    string `json:"title" validate:"required,max=500"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

// UpdateBlogRequest represents a partial blog post update
type UpdateBlogRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=500"`
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

// BlogResponse represents a blog post in API responses
type BlogResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BlogListResponse represents a paginated list of blog posts
type BlogListResponse struct {
	Blogs    []BlogResponse `json:"blogs"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a blog post owned by the calling account
func (s *BlogService) Create(authorID uuid.UUID, req *CreateBlogRequest) (*BlogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	blog := &models.Blog{
		AuthorID: authorID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	}
	if err := s.repo.Create(blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	return toBlogResponse(blog), nil
}

// GetByAuthor lists the calling account's posts with pagination. A non-empty
// search filters on title or content.
func (s *BlogService) GetByAuthor(authorID uuid.UUID, search string, page, pageSize int) (*BlogListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	offset := (page - 1) * pageSize
	blogs, total, err := s.repo.GetByAuthor(authorID, search, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get blogs: %w", err)
	}

	responses := make([]BlogResponse, len(blogs))
	for i := range blogs {
		responses[i] = *toBlogResponse(&blogs[i])
	}

	return &BlogListResponse{
		Blogs:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update after checking the caller owns the post
func (s *BlogService) Update(id, authorID uuid.UUID, req *UpdateBlogRequest) (*BlogResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	blog, err := s.getOwned(id, authorID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.ImageURL != nil {
		blog.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(blog); err != nil {
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}

	return toBlogResponse(blog), nil
}

// Delete removes a post after checking the caller owns it
func (s *BlogService) Delete(id, authorID uuid.UUID) error {
	if _, err := s.getOwned(id, authorID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	return nil
}

func (s *BlogService) getOwned(id, authorID uuid.UUID) (*models.Blog, error) {
	blog, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	if blog.AuthorID != authorID {
		return nil, apperrors.ErrNotResourceOwner
	}
	return blog, nil
}

func toBlogResponse(blog *models.Blog) *BlogResponse {
	return &BlogResponse{
		ID:        blog.ID,
		AuthorID:  blog.AuthorID,
		Title:     blog.Title,
		Content:   blog.Content,
		ImageURL:  blog.ImageURL,
		CreatedAt: blog.CreatedAt,
		UpdatedAt: blog.UpdatedAt,
	}
}
