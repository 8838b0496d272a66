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

// CommentService handles event comment business logic. Replies inherit their
// event from the parent comment; editing and deleting require ownership.
type CommentService struct {
	repo      repository.CommentRepositoryInterface
	eventRepo repository.EventRepositoryInterface
	validator *validator.Validate
}

// NewCommentService creates a new comment service
func NewCommentService(
	repo repository.CommentRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	validator *validator.Validate,
) *CommentService {
	return &CommentService{repo: repo, eventRepo: eventRepo, validator: validator}
}

// CreateCommentRequest represents the request to create a comment or reply
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest represents a comment edit
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CommentResponse represents a comment in API responses. Replies are nested
// one level deep.
type CommentResponse struct {
	ID        uuid.UUID         `json:"id"`
	EventID   uuid.UUID         `json:"event_id"`
	AuthorID  uuid.UUID         `json:"author_id"`
	ParentID  *uuid.UUID        `json:"parent_id,omitempty"`
	Content   string            `json:"content"`
	Author    *UserSummary      `json:"author,omitempty"`
	Replies   []CommentResponse `json:"replies"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CommentListResponse represents a paginated list of comments
type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a top-level comment on an event
func (s *CommentService) Create(eventID, authorID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}

	comment := &models.Comment{
		EventID:  eventID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.repo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return s.detailed(comment.ID)
}

// CreateReply creates a reply under an existing comment. The reply lands on
// the parent's event regardless of what the caller believes the event is.
func (s *CommentService) CreateReply(parentID, authorID uuid.UUID, req *CreateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	parent, err := s.repo.GetByID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get parent comment: %w", err)
	}

	reply := &models.Comment{
		EventID:  parent.EventID,
		AuthorID: authorID,
		ParentID: &parent.ID,
		Content:  req.Content,
	}
	if err := s.repo.Create(reply); err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}

	return s.detailed(reply.ID)
}

// ListByEvent lists an event's top-level comments with their replies
func (s *CommentService) ListByEvent(eventID uuid.UUID, page, pageSize int) (*CommentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to verify event: %w", err)
	}

	offset := (page - 1) * pageSize
	comments, total, err := s.repo.GetByEvent(eventID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}

	return toCommentListResponse(comments, total, page, pageSize), nil
}

// GetReplies lists a comment's replies with pagination
func (s *CommentService) GetReplies(parentID uuid.UUID, page, pageSize int) (*CommentListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := s.repo.GetByID(parentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get parent comment: %w", err)
	}

	offset := (page - 1) * pageSize
	replies, total, err := s.repo.GetReplies(parentID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get replies: %w", err)
	}

	return toCommentListResponse(replies, total, page, pageSize), nil
}

// GetByID retrieves a single comment with its replies
func (s *CommentService) GetByID(id uuid.UUID) (*CommentResponse, error) {
	return s.detailed(id)
}

// Update edits a comment's content after checking the caller owns it
func (s *CommentService) Update(id, authorID uuid.UUID, req *UpdateCommentRequest) (*CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	comment, err := s.getOwned(id, authorID)
	if err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.repo.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return s.detailed(comment.ID)
}

// Delete removes a comment and its replies after checking ownership
func (s *CommentService) Delete(id, authorID uuid.UUID) error {
	if _, err := s.getOwned(id, authorID); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

func (s *CommentService) detailed(id uuid.UUID) (*CommentResponse, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return toCommentResponse(comment), nil
}

func (s *CommentService) getOwned(id, authorID uuid.UUID) (*models.Comment, error) {
	comment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment.AuthorID != authorID {
		return nil, apperrors.ErrNotResourceOwner
	}
	return comment, nil
}

func toCommentResponse(c *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:        c.ID,
		EventID:   c.EventID,
		AuthorID:  c.AuthorID,
		ParentID:  c.ParentID,
		Content:   c.Content,
		Author:    toUserSummary(&c.Author),
		Replies:   make([]CommentResponse, len(c.Replies)),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for i := range c.Replies {
		resp.Replies[i] = *toCommentResponse(&c.Replies[i])
	}
	return resp
}

func toCommentListResponse(comments []models.Comment, total int64, page, pageSize int) *CommentListResponse {
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = *toCommentResponse(&comments[i])
	}
	return &CommentListResponse{
		Comments: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
