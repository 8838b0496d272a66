package repository

import (
	"club-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// SubscriberRepository handles database operations for newsletter subscribers
type SubscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db *gorm.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// Create creates a new subscriber
func (r *SubscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

// GetByEmail retrieves a subscriber by email
func (r *SubscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.First(&subscriber, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetAllEmails lists every subscribed address in subscription order
func (r *SubscriberRepository) GetAllEmails() ([]string, error) {
	var emails []string
	err := r.db.Model(&models.Subscriber{}).Order("created_at").Pluck("email", &emails).Error
	return emails, err
}
