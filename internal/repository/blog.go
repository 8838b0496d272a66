package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogRepository handles database operations for blog posts
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// Create creates a new blog post
func (r *BlogRepository) Create(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// GetByID retrieves a blog post by ID
func (r *BlogRepository) GetByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// GetByAuthor retrieves an author's blog posts with pagination. A non-empty
// search filters on title or content, case-insensitive.
func (r *BlogRepository) GetByAuthor(authorID uuid.UUID, search string, limit, offset int) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	query := r.db.Model(&models.Blog{}).Where("author_id = ?", authorID)
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&blogs).Error
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// Update updates a blog post
func (r *BlogRepository) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete deletes a blog post
func (r *BlogRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
