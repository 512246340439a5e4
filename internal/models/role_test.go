package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"user", RoleUser, true},
		{"moderator", RoleModerator, true},
		{"admin", RoleAdmin, true},
		{"superuser", "", false},
		{"Admin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseRole(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseRole(%q)", tt.input)
	}
}

func TestRoleCapabilities(t *testing.T) {
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, RoleModerator.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())

	assert.False(t, RoleUser.CanModerate())
	assert.True(t, RoleModerator.CanModerate())
	assert.True(t, RoleAdmin.CanModerate())

	assert.False(t, Role("superuser").CanModerate())
	assert.False(t, Role("superuser").IsValid())
}
