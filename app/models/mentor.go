package models

import "time"

// Mentor is a catalog entry in the mentor directory (premium surface).
type Mentor struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255)" json:"name" validate:"required,max=255"`
	Experience string    `gorm:"type:text" json:"experience" validate:"required"`
	Speciality string    `gorm:"type:varchar(255)" json:"speciality" validate:"required,max=255"`
	Domain     string    `gorm:"type:varchar(80);index" json:"domain"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
