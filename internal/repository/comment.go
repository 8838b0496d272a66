package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentRepository handles database operations for event comments
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create creates a new comment or reply
func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment with its author and direct replies preloaded
func (r *CommentRepository) GetByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.
		Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Replies.Author").
		First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByEvent retrieves an event's top-level comments with pagination. Replies
// ride along one level deep.
func (r *CommentRepository) GetByEvent(eventID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	base := r.db.Model(&models.Comment{}).Where("event_id = ? AND parent_id IS NULL", eventID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Author").
		Preload("Replies", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Replies.Author").
		Where("event_id = ? AND parent_id IS NULL", eventID).
		Limit(limit).Offset(offset).Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// GetReplies retrieves a comment's replies with pagination
func (r *CommentRepository) GetReplies(parentID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	var replies []models.Comment
	var total int64

	if err := r.db.Model(&models.Comment{}).Where("parent_id = ?", parentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Author").
		Where("parent_id = ?", parentID).
		Limit(limit).Offset(offset).Order("created_at").
		Find(&replies).Error
	if err != nil {
		return nil, 0, err
	}

	return replies, total, nil
}

// Update updates a comment
func (r *CommentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

// Delete deletes a comment; replies cascade at the store level
func (r *CommentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Comment{}, "id = ?", id).Error
}
