package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserNormalizesEmail(t *testing.T) {
	u, err := CreateUser("Priya Sharma", "  Priya@Example.COM ", "secret123")
	require.NoError(t, err)

	assert.Equal(t, "priya@example.com", u.Email)
	assert.Equal(t, ROLE_USER, u.Role)
	assert.Equal(t, STATUS_ACTIVE, u.Status)
	assert.True(t, u.CheckPassword("secret123"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCreateUserValidation(t *testing.T) {
	_, err := CreateUser("ab", "not-an-email", "short")
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, (&User{Role: ROLE_USER}).IsAdmin())
	assert.True(t, (&User{Role: ROLE_ADMIN}).IsAdmin())
}
