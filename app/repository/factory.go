package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetUserRepository returns the user repository instance
func (f *Factory) GetUserRepository() UserRepository {
	return f.GetRepositories().User
}

// GetProfileRepository returns the profile repository instance
func (f *Factory) GetProfileRepository() ProfileRepository {
	return f.GetRepositories().Profile
}

// GetCollegeRepository returns the college repository instance
func (f *Factory) GetCollegeRepository() CollegeRepository {
	return f.GetRepositories().College
}

// GetMentorRepository returns the mentor repository instance
func (f *Factory) GetMentorRepository() MentorRepository {
	return f.GetRepositories().Mentor
}

// GetJobRepository returns the job repository instance
func (f *Factory) GetJobRepository() JobRepository {
	return f.GetRepositories().Job
}

// GetMockInterviewRepository returns the mock interview repository instance
func (f *Factory) GetMockInterviewRepository() MockInterviewRepository {
	return f.GetRepositories().MockInterview
}

// GetPrevPaperRepository returns the previous paper repository instance
func (f *Factory) GetPrevPaperRepository() PrevPaperRepository {
	return f.GetRepositories().PrevPaper
}

// GetCacheRepository returns the cache repository instance
func (f *Factory) GetCacheRepository() CacheRepository {
	return f.GetRepositories().Cache
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}
