package repository

import (
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// Create stores a token hash
func (r *GormTokenRepository) Create(token *models.AccessToken) error {
	return r.db.Create(token).Error
}

// FindByHash finds a token record by its SHA-256 hash
func (r *GormTokenRepository) FindByHash(hash string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := r.db.Where("token_hash = ?", hash).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteAllForUser deletes every token belonging to the user
func (r *GormTokenRepository) DeleteAllForUser(userID uint64) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.AccessToken{}).Error
}
