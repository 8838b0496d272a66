package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartnerRepository handles database operations for partners
type PartnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository creates a new partner repository
func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

// Create creates a new partner
func (r *PartnerRepository) Create(partner *models.Partner) error {
	return r.db.Create(partner).Error
}

// GetByID retrieves a partner by ID
func (r *PartnerRepository) GetByID(id uuid.UUID) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.First(&partner, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// GetByName retrieves a partner by name
func (r *PartnerRepository) GetByName(name string) (*models.Partner, error) {
	var partner models.Partner
	err := r.db.First(&partner, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &partner, nil
}

// GetAll retrieves all partners with pagination
func (r *PartnerRepository) GetAll(limit, offset int) ([]models.Partner, int64, error) {
	var partners []models.Partner
	var total int64

	if err := r.db.Model(&models.Partner{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&partners).Error
	if err != nil {
		return nil, 0, err
	}

	return partners, total, nil
}

// Update updates a partner
func (r *PartnerRepository) Update(partner *models.Partner) error {
	return r.db.Save(partner).Error
}

// Delete deletes a partner
func (r *PartnerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Partner{}, "id = ?", id).Error
}
