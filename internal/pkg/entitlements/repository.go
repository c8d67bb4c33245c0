package entitlements

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/careerinn/careerinn/app/models"
)

// Repository provides the durable entitlement state. Handlers must mutate
// subscriptions and usage counters only through this contract; direct
// read-modify-write on the tables would bypass the latch atomicity.
type Repository interface {
	IsSubscriptionActive(userID uint) (bool, error)
	ActivateSubscription(userID uint) error
	HasConsumed(userID uint, capability Capability) (bool, error)
	TryConsume(userID uint, capability Capability) (ConsumeResult, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates an entitlement repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) IsSubscriptionActive(userID uint) (bool, error) {
	var sub models.Subscription
	err := r.db.Where("user_id = ?", userID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No row means never subscribed, a definite answer.
		return false, nil
	}
	if err != nil {
		return false, storeErr(err)
	}
	return sub.Active, nil
}

// ActivateSubscription is idempotent and safe under concurrent calls: the
// unique user_id index plus the conflict clause guarantee a single row.
func (r *gormRepository) ActivateSubscription(userID uint) error {
	sub := models.Subscription{UserID: userID, Active: true}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"active": true}),
	}).Create(&sub).Error
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *gormRepository) HasConsumed(userID uint, capability Capability) (bool, error) {
	var counter models.UsageCounter
	err := r.db.Where("user_id = ? AND capability = ?", userID, capability).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeErr(err)
	}
	return counter.Consumed >= 1, nil
}

// TryConsume closes the latch with a single atomic read-modify-write: an
// insert-if-absent with consumed=1, then a conditional update that only fires
// while the latch is still open. Under N concurrent calls for one account
// exactly one caller observes NewlyConsumed.
func (r *gormRepository) TryConsume(userID uint, capability Capability) (ConsumeResult, error) {
	row := models.UsageCounter{UserID: userID, Capability: string(capability), Consumed: 1}
	tx := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "capability"}},
		DoNothing: true,
	}).Create(&row)
	if tx.Error != nil {
		return AlreadyConsumed, storeErr(tx.Error)
	}
	if tx.RowsAffected > 0 {
		return NewlyConsumed, nil
	}

	// Row pre-existed; flip it only if it is still open.
	upd := r.db.Model(&models.UsageCounter{}).
		Where("user_id = ? AND capability = ? AND consumed = 0", userID, capability).
		Update("consumed", 1)
	if upd.Error != nil {
		return AlreadyConsumed, storeErr(upd.Error)
	}
	if upd.RowsAffected > 0 {
		return NewlyConsumed, nil
	}
	return AlreadyConsumed, nil
}
