package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careerinn/careerinn/app/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.College{}, &models.User{}, &models.ProviderAccount{}))
	return db
}

func seedColleges(t *testing.T, repo CollegeRepository) {
	t.Helper()
	for _, c := range []models.College{
		{Name: "Grand Palms Institute", Location: "Goa", Fees: 250000, Course: "Hotel Management", Rating: 4.5, Domain: models.DOMAIN_HOSPITALITY},
		{Name: "Coastal Culinary School", Location: "Kochi", Fees: 180000, Course: "Culinary Arts", Rating: 4.1, Domain: models.DOMAIN_HOSPITALITY},
		{Name: "Northfield Tech", Location: "Pune", Fees: 320000, Course: "Computer Science", Rating: 4.7, Domain: models.DOMAIN_BTECH},
	} {
		college := c
		require.NoError(t, repo.Create(&college))
	}
}

func TestCollegeFilter(t *testing.T) {
	repo := NewCollegeRepository(newTestDB(t))
	seedColleges(t, repo)

	all, err := repo.Filter("", 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// ordered by rating, best first
	assert.Equal(t, "Northfield Tech", all[0].Name)

	hosp, err := repo.Filter(models.DOMAIN_HOSPITALITY, 0, 0, 0)
	require.NoError(t, err)
	assert.Len(t, hosp, 2)

	cheap, err := repo.Filter(models.DOMAIN_HOSPITALITY, 0, 200000, 0)
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Coastal Culinary School", cheap[0].Name)

	rated, err := repo.Filter("", 0, 0, 4.6)
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.Equal(t, "Northfield Tech", rated[0].Name)
}

func TestCollegeCourses(t *testing.T) {
	repo := NewCollegeRepository(newTestDB(t))
	seedColleges(t, repo)

	courses, err := repo.Courses()
	require.NoError(t, err)
	assert.Equal(t, []string{"Computer Science", "Culinary Arts", "Hotel Management"}, courses)
}

func TestUserRepositoryEmailNormalized(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user, err := models.CreateUser("Asha Nair", "Asha@Example.COM", "secret123")
	require.NoError(t, err)
	require.NoError(t, repo.Create(user))

	found, err := repo.GetByEmail("  asha@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
