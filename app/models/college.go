package models

import "time"

const (
	DOMAIN_HOSPITALITY = "hospitality"
	DOMAIN_BTECH       = "btech"
)

// IsKnownDomain reports whether the given catalog domain filter is valid.
func IsKnownDomain(domain string) bool {
	return domain == DOMAIN_HOSPITALITY || domain == DOMAIN_BTECH
}

// College is a catalog entry for a college/program listing.
type College struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255)" json:"name" validate:"required,max=255"`
	Location  string    `gorm:"type:varchar(255)" json:"location" validate:"required,max=255"`
	Fees      int       `json:"fees" validate:"gte=0"`
	Course    string    `gorm:"type:varchar(255)" json:"course" validate:"required,max=255"`
	Rating    float64   `json:"rating" validate:"gte=0,lte=5"`
	Domain    string    `gorm:"type:varchar(80);index" json:"domain"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
