package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserProfileAddSkill(t *testing.T) {
	p := &UserProfile{UserID: 1}

	p.AddSkill("Communication")
	p.AddSkill("Git")
	assert.Equal(t, []string{"Communication", "Git"}, p.Skills())

	// duplicates are ignored case-insensitively
	p.AddSkill("git")
	assert.Equal(t, []string{"Communication", "Git"}, p.Skills())

	p.AddSkill("   ")
	assert.Equal(t, []string{"Communication", "Git"}, p.Skills())
}

func TestUserProfileRemoveSkill(t *testing.T) {
	p := &UserProfile{SkillsText: "Communication, Git, Teamwork"}

	p.RemoveSkill("GIT")
	assert.Equal(t, []string{"Communication", "Teamwork"}, p.Skills())

	p.RemoveSkill("unknown")
	assert.Equal(t, []string{"Communication", "Teamwork"}, p.Skills())
}

func TestUserProfileClampSelfRating(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -3, want: 0},
		{in: 0, want: 0},
		{in: 4, want: 4},
		{in: 9, want: 5},
	}

	for _, tt := range tests {
		p := &UserProfile{SelfRating: tt.in}
		p.ClampSelfRating()
		if p.SelfRating != tt.want {
			t.Fatalf("ClampSelfRating(%d) = %d, want %d", tt.in, p.SelfRating, tt.want)
		}
	}
}
