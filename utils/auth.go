package utils

import (
	"slices"

	"github.com/bwmarrin/discordgo"
)

// HasRole reports whether member holds the guild role called roleName.
// Role names are matched exactly; a name missing from roles grants nothing.
func HasRole(member *discordgo.Member, roles []*discordgo.Role, roleName string) bool {
	if member == nil {
		return false
	}
	for _, role := range roles {
		if role.Name == roleName && slices.Contains(member.Roles, role.ID) {
			return true
		}
	}
	return false
}
