package models

import "time"

// Subscription is the durable per-account premium entitlement flag. At most
// one row per user; a missing row is equivalent to Active=false. Rows are
// created lazily on first activation and never deleted (deactivation is not
// modeled in this system).
type Subscription struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	Active    bool      `gorm:"default:false" json:"active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
