package models

import "time"

// MockInterview is a practice resource; subscribed users may add their own.
type MockInterview struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(300)" json:"title" validate:"required,max=300"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Link       string    `gorm:"type:varchar(1000)" json:"link" validate:"omitempty,max=1000"`
	UploaderID *uint     `gorm:"index" json:"uploader_id,omitempty"`
	Domain     string    `gorm:"type:varchar(80);index" json:"domain"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
