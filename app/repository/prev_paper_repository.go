package repository

import (
	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// prevPaperRepository implements the PrevPaperRepository interface
type prevPaperRepository struct {
	db *gorm.DB
}

// NewPrevPaperRepository creates a new previous paper repository instance
func NewPrevPaperRepository(db *gorm.DB) PrevPaperRepository {
	return &prevPaperRepository{db: db}
}

// Create creates a new paper link
func (r *prevPaperRepository) Create(paper *models.PrevPaper) error {
	return r.db.Create(paper).Error
}

// GetByID retrieves a paper link by ID
func (r *prevPaperRepository) GetByID(id uint) (*models.PrevPaper, error) {
	var paper models.PrevPaper
	err := r.db.First(&paper, id).Error
	if err != nil {
		return nil, err
	}
	return &paper, nil
}

// GetAll retrieves all paper links, newest years first
func (r *prevPaperRepository) GetAll() ([]models.PrevPaper, error) {
	var papers []models.PrevPaper
	err := r.db.Order("year DESC, title").Find(&papers).Error
	return papers, err
}

// GetByDomain retrieves paper links for one catalog domain
func (r *prevPaperRepository) GetByDomain(domain string) ([]models.PrevPaper, error) {
	var papers []models.PrevPaper
	err := r.db.Where("domain = ?", domain).Order("year DESC, title").Find(&papers).Error
	return papers, err
}

// Update updates an existing paper link
func (r *prevPaperRepository) Update(paper *models.PrevPaper) error {
	return r.db.Save(paper).Error
}

// Delete removes a paper link
func (r *prevPaperRepository) Delete(id uint) error {
	return r.db.Delete(&models.PrevPaper{}, id).Error
}

// Count returns the total number of paper links
func (r *prevPaperRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.PrevPaper{}).Count(&count).Error
	return count, err
}
