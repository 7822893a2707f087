package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// Discord implements Gateway on top of a discordgo session, preferring the
// session state cache and falling back to REST.
type Discord struct {
	s *discordgo.Session
}

func NewDiscord(s *discordgo.Session) *Discord {
	return &Discord{s: s}
}

func (d *Discord) Channel(channelID string) (*discordgo.Channel, error) {
	if d.s.State != nil {
		if ch, err := d.s.State.Channel(channelID); err == nil {
			return ch, nil
		}
	}
	ch, err := d.s.Channel(channelID)
	if err != nil {
		return nil, wrap(err, "channel %s", channelID)
	}
	return ch, nil
}

func (d *Discord) Message(channelID, messageID string) (*discordgo.Message, error) {
	msg, err := d.s.ChannelMessage(channelID, messageID)
	if err != nil {
		return nil, wrap(err, "message %s", messageID)
	}
	return msg, nil
}

func (d *Discord) Send(channelID, content string) (*discordgo.Message, error) {
	msg, err := d.s.ChannelMessageSend(channelID, content)
	if err != nil {
		return nil, wrap(err, "send to channel %s", channelID)
	}
	return msg, nil
}

func (d *Discord) Reply(channelID, messageID, content string) (*discordgo.Message, error) {
	msg, err := d.s.ChannelMessageSendReply(channelID, content, &discordgo.MessageReference{
		MessageID: messageID,
		ChannelID: channelID,
	})
	if err != nil {
		return nil, wrap(err, "reply to message %s", messageID)
	}
	return msg, nil
}

func (d *Discord) React(channelID, messageID, emoji string) error {
	if err := d.s.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return wrap(err, "react %s on message %s", emoji, messageID)
	}
	return nil
}

func (d *Discord) Delete(channelID, messageID string) error {
	if err := d.s.ChannelMessageDelete(channelID, messageID); err != nil {
		return wrap(err, "delete message %s", messageID)
	}
	return nil
}

func (d *Discord) Member(guildID, userID string) (*discordgo.Member, error) {
	if d.s.State != nil {
		if m, err := d.s.State.Member(guildID, userID); err == nil {
			return m, nil
		}
	}
	m, err := d.s.GuildMember(guildID, userID)
	if err != nil {
		return nil, wrap(err, "member %s of guild %s", userID, guildID)
	}
	return m, nil
}

func (d *Discord) Roles(guildID string) ([]*discordgo.Role, error) {
	if d.s.State != nil {
		if g, err := d.s.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
			return g.Roles, nil
		}
	}
	roles, err := d.s.GuildRoles(guildID)
	if err != nil {
		return nil, wrap(err, "roles of guild %s", guildID)
	}
	return roles, nil
}

func (d *Discord) DirectMessage(userID, content string) error {
	ch, err := d.s.UserChannelCreate(userID)
	if err != nil {
		return wrap(err, "open DM with %s", userID)
	}
	if _, err := d.s.ChannelMessageSend(ch.ID, content); err != nil {
		return wrap(err, "send DM to %s", userID)
	}
	return nil
}

func (d *Discord) RespondEphemeral(interaction *discordgo.Interaction, content string) error {
	err := d.s.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return wrap(err, "respond to interaction %s", interaction.ID)
	}
	return nil
}

// wrap annotates err and marks HTTP 404 answers with ErrNotFound.
func wrap(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if isNotFound(err) {
		return fmt.Errorf("%s: %w: %w", msg, ErrNotFound, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
