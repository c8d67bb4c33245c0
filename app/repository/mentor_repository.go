package repository

import (
	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// mentorRepository implements the MentorRepository interface
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository creates a new mentor repository instance
func NewMentorRepository(db *gorm.DB) MentorRepository {
	return &mentorRepository{db: db}
}

// Create creates a new mentor entry
func (r *mentorRepository) Create(mentor *models.Mentor) error {
	return r.db.Create(mentor).Error
}

// GetByID retrieves a mentor by ID
func (r *mentorRepository) GetByID(id uint) (*models.Mentor, error) {
	var mentor models.Mentor
	err := r.db.First(&mentor, id).Error
	if err != nil {
		return nil, err
	}
	return &mentor, nil
}

// GetAll retrieves the full mentor directory
func (r *mentorRepository) GetAll() ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := r.db.Order("name").Find(&mentors).Error
	return mentors, err
}

// GetByDomain retrieves mentors for one catalog domain
func (r *mentorRepository) GetByDomain(domain string) ([]models.Mentor, error) {
	var mentors []models.Mentor
	err := r.db.Where("domain = ?", domain).Order("name").Find(&mentors).Error
	return mentors, err
}

// Update updates an existing mentor entry
func (r *mentorRepository) Update(mentor *models.Mentor) error {
	return r.db.Save(mentor).Error
}

// Delete removes a mentor entry
func (r *mentorRepository) Delete(id uint) error {
	return r.db.Delete(&models.Mentor{}, id).Error
}

// Count returns the total number of mentors
func (r *mentorRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Mentor{}).Count(&count).Error
	return count, err
}
