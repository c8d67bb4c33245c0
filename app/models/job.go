package models

import "time"

// Job is a catalog entry for a placement/job listing.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:text" json:"title" validate:"required"`
	Company   string    `gorm:"type:varchar(255)" json:"company" validate:"required,max=255"`
	Location  string    `gorm:"type:varchar(255)" json:"location" validate:"required,max=255"`
	Salary    string    `gorm:"type:varchar(255)" json:"salary" validate:"required,max=255"`
	Domain    string    `gorm:"type:varchar(80);index" json:"domain"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
