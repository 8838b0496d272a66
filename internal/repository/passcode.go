package repository

import (
	"time"

	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PasscodeRepository handles database operations for passcodes
type PasscodeRepository struct {
	db *gorm.DB
}

// NewPasscodeRepository creates a new passcode repository
func NewPasscodeRepository(db *gorm.DB) *PasscodeRepository {
	return &PasscodeRepository{db: db}
}

// Create stores a new passcode
func (r *PasscodeRepository) Create(passcode *models.Passcode) error {
	return r.db.Create(passcode).Error
}

// InvalidateUnverified forces the expiry of every unverified passcode of the
// account to the given instant. Rows stay in storage but become unusable.
func (r *PasscodeRepository) InvalidateUnverified(userID uuid.UUID, now time.Time) error {
	return r.db.Model(&models.Passcode{}).
		Where("user_id = ? AND verified = ?", userID, false).
		Update("expires_at", now).Error
}

// GetLatestUnverified retrieves the most recently issued unverified passcode
// for the account. Older unverified passcodes are ignored even if unexpired.
func (r *PasscodeRepository) GetLatestUnverified(userID uuid.UUID) (*models.Passcode, error) {
	var passcode models.Passcode
	err := r.db.Where("user_id = ? AND verified = ?", userID, false).
		Order("created_at DESC").
		First(&passcode).Error
	if err != nil {
		return nil, err
	}
	return &passcode, nil
}

// GetLatestVerified retrieves the most recently issued verified passcode for
// the account, used by the password-reset completion step.
func (r *PasscodeRepository) GetLatestVerified(userID uuid.UUID) (*models.Passcode, error) {
	var passcode models.Passcode
	err := r.db.Where("user_id = ? AND verified = ?", userID, true).
		Order("created_at DESC").
		First(&passcode).Error
	if err != nil {
		return nil, err
	}
	return &passcode, nil
}

// Update persists a modified passcode
func (r *PasscodeRepository) Update(passcode *models.Passcode) error {
	return r.db.Save(passcode).Error
}

// Delete removes a passcode row
func (r *PasscodeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Passcode{}, "id = ?", id).Error
}
