package repository

import (
	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// profileRepository implements the ProfileRepository interface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate returns the existing workspace profile or creates an empty one
func (r *profileRepository) GetOrCreate(userID uint) (*models.UserProfile, error) {
	return models.GetOrCreateUserProfile(r.db, userID)
}

// Update persists workspace profile changes
func (r *profileRepository) Update(profile *models.UserProfile) error {
	profile.ClampSelfRating()
	return r.db.Save(profile).Error
}
