package repository

import (
	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// mockInterviewRepository implements the MockInterviewRepository interface
type mockInterviewRepository struct {
	db *gorm.DB
}

// NewMockInterviewRepository creates a new mock interview repository instance
func NewMockInterviewRepository(db *gorm.DB) MockInterviewRepository {
	return &mockInterviewRepository{db: db}
}

// Create creates a new practice resource
func (r *mockInterviewRepository) Create(item *models.MockInterview) error {
	return r.db.Create(item).Error
}

// GetByID retrieves a practice resource by ID
func (r *mockInterviewRepository) GetByID(id uint) (*models.MockInterview, error) {
	var item models.MockInterview
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAll retrieves all practice resources, newest first
func (r *mockInterviewRepository) GetAll() ([]models.MockInterview, error) {
	var items []models.MockInterview
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

// GetByDomain retrieves practice resources for one catalog domain
func (r *mockInterviewRepository) GetByDomain(domain string) ([]models.MockInterview, error) {
	var items []models.MockInterview
	err := r.db.Where("domain = ?", domain).Order("created_at DESC").Find(&items).Error
	return items, err
}

// GetByUploader retrieves resources contributed by a specific user
func (r *mockInterviewRepository) GetByUploader(userID uint) ([]models.MockInterview, error) {
	var items []models.MockInterview
	err := r.db.Where("uploader_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

// Update updates an existing practice resource
func (r *mockInterviewRepository) Update(item *models.MockInterview) error {
	return r.db.Save(item).Error
}

// Delete removes a practice resource
func (r *mockInterviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.MockInterview{}, id).Error
}

// Count returns the total number of practice resources
func (r *mockInterviewRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MockInterview{}).Count(&count).Error
	return count, err
}
