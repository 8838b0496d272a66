package repository

import (
	"club-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles read and removal operations for memberships.
// Inserts go through CommunityRepository.Join so the cap check and the
// insert share a transaction.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// GetByCommunity retrieves a community's members with pagination
func (r *MembershipRepository) GetByCommunity(communityID uuid.UUID, limit, offset int) ([]models.Membership, int64, error) {
	var members []models.Membership
	var total int64

	if err := r.db.Model(&models.Membership{}).Where("community_id = ?", communityID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("community_id = ?", communityID).
		Limit(limit).Offset(offset).Order("joined_at").
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Delete removes a membership row, scoped to its community so an ID from
// another community cannot be removed through the wrong endpoint.
func (r *MembershipRepository) Delete(communityID, id uuid.UUID) error {
	result := r.db.Delete(&models.Membership{}, "id = ? AND community_id = ?", id, communityID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
