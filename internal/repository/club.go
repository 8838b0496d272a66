package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// Create creates a new club
func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetByName retrieves a club by name
func (r *ClubRepository) GetByName(name string) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetAll retrieves all clubs with pagination
func (r *ClubRepository) GetAll(limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	if err := r.db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("created_at").Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}

// Update updates a club
func (r *ClubRepository) Update(club *models.Club) error {
	return r.db.Save(club).Error
}

// Delete deletes a club
func (r *ClubRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Club{}, "id = ?", id).Error
}
