package utils

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	roles := []*discordgo.Role{
		{ID: "r1", Name: "everyone"},
		{ID: "r2", Name: "record perms"},
	}

	tests := []struct {
		name   string
		member *discordgo.Member
		role   string
		want   bool
	}{
		{"holds role", &discordgo.Member{Roles: []string{"r1", "r2"}}, "record perms", true},
		{"lacks role", &discordgo.Member{Roles: []string{"r1"}}, "record perms", false},
		{"role not in guild", &discordgo.Member{Roles: []string{"r1", "r2"}}, "moderators", false},
		{"name is case sensitive", &discordgo.Member{Roles: []string{"r2"}}, "Record Perms", false},
		{"nil member", nil, "record perms", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRole(tt.member, roles, tt.role))
		})
	}
}
