// Package gateway is the boundary between the bot and the chat platform.
package gateway

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrNotFound is returned when a channel, message or member does not resolve.
var ErrNotFound = errors.New("not found")

// Gateway performs the platform calls the record workflow needs. Every call
// reports its failure; nothing is retried.
type Gateway interface {
	Channel(channelID string) (*discordgo.Channel, error)
	Message(channelID, messageID string) (*discordgo.Message, error)
	Send(channelID, content string) (*discordgo.Message, error)
	Reply(channelID, messageID, content string) (*discordgo.Message, error)
	React(channelID, messageID, emoji string) error
	Delete(channelID, messageID string) error
	Member(guildID, userID string) (*discordgo.Member, error)
	Roles(guildID string) ([]*discordgo.Role, error)
	DirectMessage(userID, content string) error
	RespondEphemeral(interaction *discordgo.Interaction, content string) error
}

// DisplayName returns the guild nickname, the global name or the username,
// whichever is set first.
func DisplayName(member *discordgo.Member) string {
	if member == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User == nil {
		return ""
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
