package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExecutiveRoleRepository handles lookups against the executive role
// registry. Role rows themselves are written by the community repository's
// transactions; this repository only answers uniqueness questions.
type ExecutiveRoleRepository struct {
	db *gorm.DB
}

// NewExecutiveRoleRepository creates a new executive role repository
func NewExecutiveRoleRepository(db *gorm.DB) *ExecutiveRoleRepository {
	return &ExecutiveRoleRepository{db: db}
}

// ExistsForUser reports whether the account holds any executive role in any community
func (r *ExecutiveRoleRepository) ExistsForUser(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ExecutiveRole{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// ExistsForUserExcludingCommunity reports whether the account holds an
// executive role outside the given community. Used on update so a user can
// be moved between slots of the same community without tripping the rule
// against themselves.
func (r *ExecutiveRoleRepository) ExistsForUserExcludingCommunity(userID, communityID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ExecutiveRole{}).
		Where("user_id = ? AND community_id != ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}

// GetByUser retrieves the executive role held by an account, if any
func (r *ExecutiveRoleRepository) GetByUser(userID uuid.UUID) (*models.ExecutiveRole, error) {
	var role models.ExecutiveRole
	err := r.db.First(&role, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByCommunity retrieves all executive roles of a community
func (r *ExecutiveRoleRepository) GetByCommunity(communityID uuid.UUID) ([]models.ExecutiveRole, error) {
	var roles []models.ExecutiveRole
	err := r.db.Preload("User").Where("community_id = ?", communityID).Find(&roles).Error
	return roles, err
}
