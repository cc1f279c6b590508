package data

import (
	"strings"
	"testing"

	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"plain", "carol", true},
		{"with allowed symbols", "user.name@host+x-1", true},
		{"digits only", "12345", true},
		{"empty", "", false},
		{"reserved me", "me", false},
		{"contains space", "two words", false},
		{"contains slash", "a/b", false},
		{"too long", strings.Repeat("a", 151), false},
		{"max length", strings.Repeat("a", 150), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateUsername(v, tt.username)
			assert.Equal(t, tt.valid, v.Valid(), "errors: %v", v.Errors)
		})
	}
}

func TestValidateRole(t *testing.T) {
	for _, role := range []string{RoleUser, RoleModerator, RoleAdmin} {
		v := validator.New()
		ValidateRole(v, role)
		assert.True(t, v.Valid())
	}
	v := validator.New()
	ValidateRole(v, "owner")
	assert.False(t, v.Valid())
}

func TestAnonymousUser(t *testing.T) {
	assert.True(t, AnonymousUser.IsAnonymous())
	assert.False(t, (&User{ID: 1}).IsAnonymous())
}
