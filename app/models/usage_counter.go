package models

import "time"

// UsageCounter is the durable metering latch for one-time capabilities. One
// row per (user, capability); Consumed starts at 0 and only ever moves to 1.
// The storage shape generalizes to counts so future multi-use quotas can
// reuse the table, but within this system it is strictly a latch.
type UsageCounter struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"uniqueIndex:user_capability" json:"user_id"`
	Capability string    `gorm:"uniqueIndex:user_capability;type:varchar(100)" json:"capability"`
	Consumed   int       `gorm:"default:0" json:"consumed"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
