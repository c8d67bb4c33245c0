package models

import "time"

// PrevPaper is a curated previous-year question paper link. Uploads are
// disabled in this system; entries point at public resources only.
type PrevPaper struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"type:varchar(300)" json:"title" validate:"required,max=300"`
	Year       string    `gorm:"type:varchar(20)" json:"year"`
	Link       string    `gorm:"type:varchar(1000)" json:"link" validate:"omitempty,max=1000"`
	UploaderID *uint     `gorm:"index" json:"uploader_id,omitempty"`
	Domain     string    `gorm:"type:varchar(80);index" json:"domain"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
