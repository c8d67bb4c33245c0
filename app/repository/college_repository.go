package repository

import (
	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// collegeRepository implements the CollegeRepository interface
type collegeRepository struct {
	db *gorm.DB
}

// NewCollegeRepository creates a new college repository instance
func NewCollegeRepository(db *gorm.DB) CollegeRepository {
	return &collegeRepository{db: db}
}

// Create creates a new college entry
func (r *collegeRepository) Create(college *models.College) error {
	return r.db.Create(college).Error
}

// GetByID retrieves a college by its ID
func (r *collegeRepository) GetByID(id uint) (*models.College, error) {
	var college models.College
	err := r.db.First(&college, id).Error
	if err != nil {
		return nil, err
	}
	return &college, nil
}

// GetAll retrieves the full college catalog
func (r *collegeRepository) GetAll() ([]models.College, error) {
	var colleges []models.College
	err := r.db.Order("rating DESC").Find(&colleges).Error
	return colleges, err
}

// GetByDomain retrieves colleges for one catalog domain
func (r *collegeRepository) GetByDomain(domain string) ([]models.College, error) {
	var colleges []models.College
	err := r.db.Where("domain = ?", domain).Order("rating DESC").Find(&colleges).Error
	return colleges, err
}

// Filter applies the catalog filters. Empty domain, non-positive fee bounds
// and a zero minRating mean "no filter" for that dimension.
func (r *collegeRepository) Filter(domain string, minFees, maxFees int, minRating float64) ([]models.College, error) {
	query := r.db.Model(&models.College{})
	if domain != "" {
		query = query.Where("domain = ?", domain)
	}
	if minFees > 0 {
		query = query.Where("fees >= ?", minFees)
	}
	if maxFees > 0 {
		query = query.Where("fees <= ?", maxFees)
	}
	if minRating > 0 {
		query = query.Where("rating >= ?", minRating)
	}

	var colleges []models.College
	err := query.Order("rating DESC").Find(&colleges).Error
	return colleges, err
}

// Update updates an existing college entry
func (r *collegeRepository) Update(college *models.College) error {
	return r.db.Save(college).Error
}

// Delete removes a college entry
func (r *collegeRepository) Delete(id uint) error {
	return r.db.Delete(&models.College{}, id).Error
}

// Count returns the total number of college entries
func (r *collegeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.College{}).Count(&count).Error
	return count, err
}

// Courses returns the distinct course names, for the filter dropdown
func (r *collegeRepository) Courses() ([]string, error) {
	var courses []string
	err := r.db.Model(&models.College{}).Distinct("course").Order("course").Pluck("course", &courses).Error
	return courses, err
}
