package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestimonialRepository handles database operations for testimonials
type TestimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

// Create creates a new testimonial
func (r *TestimonialRepository) Create(testimonial *models.Testimonial) error {
	return r.db.Create(testimonial).Error
}

// GetByID retrieves a testimonial by ID
func (r *TestimonialRepository) GetByID(id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := r.db.First(&testimonial, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// GetAll retrieves testimonials with pagination, optionally approved only
func (r *TestimonialRepository) GetAll(approvedOnly bool, limit, offset int) ([]models.Testimonial, int64, error) {
	var testimonials []models.Testimonial
	var total int64

	query := r.db.Model(&models.Testimonial{})
	if approvedOnly {
		query = query.Where("approved = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Limit(limit).Offset(offset).Order("created_at DESC").Find(&testimonials).Error
	if err != nil {
		return nil, 0, err
	}

	return testimonials, total, nil
}

// Update updates a testimonial
func (r *TestimonialRepository) Update(testimonial *models.Testimonial) error {
	return r.db.Save(testimonial).Error
}

// Delete deletes a testimonial
func (r *TestimonialRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Testimonial{}, "id = ?", id).Error
}
