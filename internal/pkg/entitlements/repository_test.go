package entitlements

import (
	"path/filepath"
	"sync"
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
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "entitlements.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// sqlite allows one writer; serialize connections so concurrent calls
	// queue instead of failing with a busy error
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Subscription{}, &models.UsageCounter{}))
	return db
}

func TestTryConsumeOnce(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	res, err := repo.TryConsume(1, CapabilityFreeChat)
	require.NoError(t, err)
	assert.Equal(t, NewlyConsumed, res)

	res, err = repo.TryConsume(1, CapabilityFreeChat)
	require.NoError(t, err)
	assert.Equal(t, AlreadyConsumed, res)

	consumed, err := repo.HasConsumed(1, CapabilityFreeChat)
	require.NoError(t, err)
	assert.True(t, consumed)
}

func TestTryConsumeConcurrent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	const workers = 16
	results := make([]ConsumeResult, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = repo.TryConsume(42, CapabilityFreeChat)
		}(i)
	}
	wg.Wait()

	newly := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		if results[i] == NewlyConsumed {
			newly++
		}
	}
	assert.Equal(t, 1, newly, "exactly one caller may observe NewlyConsumed")

	var count int64
	require.NoError(t, db.Model(&models.UsageCounter{}).Where("user_id = ?", 42).Count(&count).Error)
	assert.Equal(t, int64(1), count, "no duplicate counter rows")

	consumed, err := repo.HasConsumed(42, CapabilityFreeChat)
	require.NoError(t, err)
	assert.True(t, consumed)
}

func TestTryConsumeIsPerCapability(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	res, err := repo.TryConsume(7, CapabilityFreeChat)
	require.NoError(t, err)
	assert.Equal(t, NewlyConsumed, res)

	consumed, err := repo.HasConsumed(7, Capability("mock_interview"))
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestHasConsumedDefaultsToFalse(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	consumed, err := repo.HasConsumed(999, CapabilityFreeChat)
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestActivateSubscriptionIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.ActivateSubscription(5))
	require.NoError(t, repo.ActivateSubscription(5))

	active, err := repo.IsSubscriptionActive(5)
	require.NoError(t, err)
	assert.True(t, active)

	var count int64
	require.NoError(t, db.Model(&models.Subscription{}).Where("user_id = ?", 5).Count(&count).Error)
	assert.Equal(t, int64(1), count, "repeat activation must not create duplicate rows")
}

func TestIsSubscriptionActiveDefaultsToFalse(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	active, err := repo.IsSubscriptionActive(123)
	require.NoError(t, err)
	assert.False(t, active)
}

// Subscription and the free-chat latch are independent facts; verify all
// four combinations of (subscribed, consumed).
func TestSubscriptionAndLatchAreIndependent(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	tests := []struct {
		name      string
		userID    uint
		subscribe bool
		consume   bool
	}{
		{name: "neither", userID: 1},
		{name: "subscribed only", userID: 2, subscribe: true},
		{name: "consumed only", userID: 3, consume: true},
		{name: "both", userID: 4, subscribe: true, consume: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.subscribe {
				require.NoError(t, repo.ActivateSubscription(tt.userID))
			}
			if tt.consume {
				_, err := repo.TryConsume(tt.userID, CapabilityFreeChat)
				require.NoError(t, err)
			}

			active, err := repo.IsSubscriptionActive(tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.subscribe, active)

			consumed, err := repo.HasConsumed(tt.userID, CapabilityFreeChat)
			require.NoError(t, err)
			assert.Equal(t, tt.consume, consumed)
		})
	}
}
