package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// UserProfile stores the student workspace data shown on the dashboard.
type UserProfile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex" json:"user_id"`
	SkillsText  string    `gorm:"type:text" json:"skills_text"`
	TargetRoles string    `gorm:"type:text" json:"target_roles"`
	SelfRating  int       `gorm:"default:0" json:"self_rating"`
	ResumeLink  string    `gorm:"type:varchar(500)" json:"resume_link"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetOrCreateUserProfile returns the existing profile or creates an empty one
func GetOrCreateUserProfile(db *gorm.DB, userID uint) (*UserProfile, error) {
	var p UserProfile
	if err := db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			p = UserProfile{UserID: userID}
			if err := db.Create(&p).Error; err != nil {
				return nil, err
			}
			return &p, nil
		}
		return nil, err
	}
	return &p, nil
}

// Skills splits the comma-separated skills text into trimmed entries.
func (p *UserProfile) Skills() []string {
	parts := strings.Split(p.SkillsText, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// AddSkill appends a skill if it is not already present (case-insensitive).
func (p *UserProfile) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, s := range p.Skills() {
		if strings.EqualFold(s, skill) {
			return
		}
	}
	skills := append(p.Skills(), skill)
	p.SkillsText = strings.Join(skills, ", ")
}

// RemoveSkill drops a skill from the list (case-insensitive match).
func (p *UserProfile) RemoveSkill(skill string) {
	skill = strings.TrimSpace(skill)
	kept := make([]string, 0)
	for _, s := range p.Skills() {
		if !strings.EqualFold(s, skill) {
			kept = append(kept, s)
		}
	}
	p.SkillsText = strings.Join(kept, ", ")
}

// ClampSelfRating keeps the readiness rating within the 0-5 scale.
func (p *UserProfile) ClampSelfRating() {
	if p.SelfRating < 0 {
		p.SelfRating = 0
	}
	if p.SelfRating > 5 {
		p.SelfRating = 5
	}
}
