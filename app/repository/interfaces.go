package repository

import (
	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Search(query string) ([]models.User, error)
	GetByProvider(provider, providerUserID string) (*models.User, error)
	LinkProvider(account *models.ProviderAccount) error
}

// ProfileRepository defines the interface for student workspace data
type ProfileRepository interface {
	GetOrCreate(userID uint) (*models.UserProfile, error)
	Update(profile *models.UserProfile) error
}

// CollegeRepository defines the interface for the college catalog
type CollegeRepository interface {
	Create(college *models.College) error
	GetByID(id uint) (*models.College, error)
	GetAll() ([]models.College, error)
	GetByDomain(domain string) ([]models.College, error)
	Filter(domain string, minFees, maxFees int, minRating float64) ([]models.College, error)
	Update(college *models.College) error
	Delete(id uint) error
	Count() (int64, error)
	Courses() ([]string, error)
}

// MentorRepository defines the interface for the mentor directory
type MentorRepository interface {
	Create(mentor *models.Mentor) error
	GetByID(id uint) (*models.Mentor, error)
	GetAll() ([]models.Mentor, error)
	GetByDomain(domain string) ([]models.Mentor, error)
	Update(mentor *models.Mentor) error
	Delete(id uint) error
	Count() (int64, error)
}

// JobRepository defines the interface for job listings
type JobRepository interface {
	Create(job *models.Job) error
	GetByID(id uint) (*models.Job, error)
	GetAll() ([]models.Job, error)
	GetByDomain(domain string) ([]models.Job, error)
	Search(query string) ([]models.Job, error)
	Update(job *models.Job) error
	Delete(id uint) error
	Count() (int64, error)
}

// MockInterviewRepository defines the interface for practice resources
type MockInterviewRepository interface {
	Create(item *models.MockInterview) error
	GetByID(id uint) (*models.MockInterview, error)
	GetAll() ([]models.MockInterview, error)
	GetByDomain(domain string) ([]models.MockInterview, error)
	GetByUploader(userID uint) ([]models.MockInterview, error)
	Update(item *models.MockInterview) error
	Delete(id uint) error
	Count() (int64, error)
}

// PrevPaperRepository defines the interface for previous-year paper links
type PrevPaperRepository interface {
	Create(paper *models.PrevPaper) error
	GetByID(id uint) (*models.PrevPaper, error)
	GetAll() ([]models.PrevPaper, error)
	GetByDomain(domain string) ([]models.PrevPaper, error)
	Update(paper *models.PrevPaper) error
	Delete(id uint) error
	Count() (int64, error)
}

// CacheRepository defines the interface for cache maintenance operations
// (admin tooling over the Redis-backed transcript and cache keys).
type CacheRepository interface {
	FindKeysByPatterns(patterns []string) ([]string, error)
	GetListLength(key string) (int64, error)
	DeleteKeys(keys []string) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User          UserRepository
	Profile       ProfileRepository
	College       CollegeRepository
	Mentor        MentorRepository
	Job           JobRepository
	MockInterview MockInterviewRepository
	PrevPaper     PrevPaperRepository
	Cache         CacheRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepository(db),
		Profile:       NewProfileRepository(db),
		College:       NewCollegeRepository(db),
		Mentor:        NewMentorRepository(db),
		Job:           NewJobRepository(db),
		MockInterview: NewMockInterviewRepository(db),
		PrevPaper:     NewPrevPaperRepository(db),
		Cache:         NewCacheRepository(),
	}
}
