package repository

import (
	"errors"

	"club-portal-backend/internal/database/models"
	apperrors "club-portal-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func forUpdate() clause.Locking {
	return clause.Locking{Strength: "UPDATE"}
}

// CommunityRepository handles database operations for communities. The
// multi-row writes (create with leadership, leadership reassignment, join)
// run inside single transactions so a failure in any nested phase rolls the
// whole operation back.
type CommunityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// CreateWithRoles persists the community, its nested sessions and social
// links, and one executive role row per assigned slot, atomically.
func (r *CommunityRepository) CreateWithRoles(community *models.Community, roles []models.ExecutiveRole) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		for i := range roles {
			roles[i].CommunityID = community.ID
			if err := tx.Create(&roles[i]).Error; err != nil {
				return err
			}
		}
		return recomputeTotalMembers(tx, community.ID, &community.TotalMembers)
	})
}

// UpdateWithRoles saves the community, applies the slot reassignments
// (delete old row, create new row) and, when requested, replaces the social
// link and session collections wholesale. The member count is recomputed
// unconditionally. All in one transaction.
func (r *CommunityRepository) UpdateWithRoles(
	community *models.Community,
	removeRoles []models.ExecutiveRole,
	addRoles []models.ExecutiveRole,
	socials []models.SocialMediaLink,
	replaceSocials bool,
	sessions []models.CommunitySession,
	replaceSessions bool,
) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("SocialMedia", "Sessions", "Members", "ExecutiveRoles").Save(community).Error; err != nil {
			return err
		}

		for _, role := range removeRoles {
			err := tx.Where("user_id = ? AND community_id = ? AND position = ?",
				role.UserID, role.CommunityID, role.Position).
				Delete(&models.ExecutiveRole{}).Error
			if err != nil {
				return err
			}
		}
		for i := range addRoles {
			if err := tx.Create(&addRoles[i]).Error; err != nil {
				return err
			}
		}

		if replaceSocials {
			if err := tx.Where("community_id = ?", community.ID).Delete(&models.SocialMediaLink{}).Error; err != nil {
				return err
			}
			for i := range socials {
				socials[i].CommunityID = community.ID
				if err := tx.Create(&socials[i]).Error; err != nil {
					return err
				}
			}
		}

		if replaceSessions {
			if err := tx.Where("community_id = ?", community.ID).Delete(&models.CommunitySession{}).Error; err != nil {
				return err
			}
			for i := range sessions {
				sessions[i].CommunityID = community.ID
				if err := tx.Create(&sessions[i]).Error; err != nil {
					return err
				}
			}
		}

		return recomputeTotalMembers(tx, community.ID, &community.TotalMembers)
	})
}

// Join inserts a membership after re-running the cap and duplicate checks
// inside the same transaction as the insert, closing the read-then-write
// race between concurrent joins from one email.
func (r *CommunityRepository) Join(communityID uuid.UUID, membership *models.Membership, cap int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var community models.Community
		if err := tx.Clauses(forUpdate()).First(&community, "id = ?", communityID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Membership{}).Where("email = ?", membership.Email).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(cap) {
			return apperrors.NewCapExceededError(cap)
		}

		var existing int64
		err := tx.Model(&models.Membership{}).
			Where("community_id = ? AND email = ?", communityID, membership.Email).
			Count(&existing).Error
		if err != nil {
			return err
		}
		if existing > 0 {
			return apperrors.ErrDuplicateMembership
		}

		membership.CommunityID = communityID
		if err := tx.Create(membership).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateMembership
			}
			return err
		}

		return recomputeTotalMembers(tx, communityID, nil)
	})
}

// RecomputeTotalMembers refreshes the denormalized member count from the
// membership rows and returns the new total.
func (r *CommunityRepository) RecomputeTotalMembers(communityID uuid.UUID) (int64, error) {
	var total int64
	err := recomputeTotalMembers(r.db, communityID, &total)
	return total, err
}

func recomputeTotalMembers(tx *gorm.DB, communityID uuid.UUID, out *int64) error {
	var total int64
	if err := tx.Model(&models.Membership{}).Where("community_id = ?", communityID).Count(&total).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Community{}).Where("id = ?", communityID).Update("total_members", total).Error; err != nil {
		return err
	}
	if out != nil {
		*out = total
	}
	return nil
}

// GetByID retrieves a community by ID
func (r *CommunityRepository) GetByID(id uuid.UUID) (*models.Community, error) {
	var community models.Community
	err := r.db.First(&community, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

// GetWithDetails retrieves a community with leadership, members, sessions
// and social links preloaded.
func (r *CommunityRepository) GetWithDetails(id uuid.UUID) (*models.Community, error) {
	var community models.Community
	err := r.db.
		Preload("Lead").
		Preload("CoLead").
		Preload("Secretary").
		Preload("SocialMedia").
		Preload("Sessions").
		Preload("Members").
		First(&community, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

// GetByName retrieves a community by name within a club
func (r *CommunityRepository) GetByName(clubID uuid.UUID, name string) (*models.Community, error) {
	var community models.Community
	err := r.db.First(&community, "club_id = ? AND name = ?", clubID, name).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

// SearchByName retrieves a community by exact name, case-insensitive
func (r *CommunityRepository) SearchByName(name string) (*models.Community, error) {
	var community models.Community
	err := r.db.
		Preload("Lead").
		Preload("CoLead").
		Preload("Secretary").
		Preload("SocialMedia").
		Preload("Sessions").
		Preload("Members").
		First(&community, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &community, nil
}

// GetAll retrieves all communities with pagination
func (r *CommunityRepository) GetAll(limit, offset int) ([]models.Community, int64, error) {
	var communities []models.Community
	var total int64

	if err := r.db.Model(&models.Community{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Lead").
		Preload("CoLead").
		Preload("Secretary").
		Preload("SocialMedia").
		Preload("Sessions").
		Limit(limit).Offset(offset).Order("created_at").
		Find(&communities).Error
	if err != nil {
		return nil, 0, err
	}

	return communities, total, nil
}

// Delete deletes a community; memberships, sessions, social links and role
// rows cascade at the store level.
func (r *CommunityRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Community{}, "id = ?", id).Error
}
