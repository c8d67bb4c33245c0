package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// jobRepository implements the JobRepository interface
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository instance
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job listing
func (r *jobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// GetByID retrieves a job listing by ID
func (r *jobRepository) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetAll retrieves all job listings, newest first
func (r *jobRepository) GetAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// GetByDomain retrieves job listings for one catalog domain
func (r *jobRepository) GetByDomain(domain string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("domain = ?", domain).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// Search searches listings by title, company or location
func (r *jobRepository) Search(query string) ([]models.Job, error) {
	var jobs []models.Job
	searchPattern := "%" + strings.TrimSpace(query) + "%"
	err := r.db.Where("title LIKE ? OR company LIKE ? OR location LIKE ?",
		searchPattern, searchPattern, searchPattern).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// Update updates an existing job listing
func (r *jobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete removes a job listing
func (r *jobRepository) Delete(id uint) error {
	return r.db.Delete(&models.Job{}, id).Error
}

// Count returns the total number of job listings
func (r *jobRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Count(&count).Error
	return count, err
}
