package record

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/handler"
	"github.com/f8wq/TFL-Manager/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func submitInteraction(opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "interaction",
		Type:   discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{User: &discordgo.User{ID: "submitter"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    "record_submit",
			Options: opts,
		},
	}}
}

func TestSubmitRequestFromOptions(t *testing.T) {
	i := submitInteraction(
		stringOption("username", "alice"),
		stringOption("level", "Level1"),
		stringOption("framerate", "60"),
		stringOption("completion", "No damage"),
	)

	assert.Equal(t, level1(), submitRequestFrom(i))
}

func TestSubmitRequestFromDirectMessage(t *testing.T) {
	i := submitInteraction(stringOption("level", "Level1"))
	i.Member = nil
	i.User = &discordgo.User{ID: "dm-user"}

	req := submitRequestFrom(i)
	assert.Equal(t, "dm-user", req.SubmitterID)
	assert.Equal(t, "Level1", req.Level)
	assert.Empty(t, req.Username)
}

func TestRegisteredCommandsReachLifecycle(t *testing.T) {
	f := newFixture(t, defaultSettings())
	RegisterHandlers(f.l)

	handler.OnInteractionCreate(nil, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{Name: "record"},
	}})
	handler.OnInteractionCreate(nil, submitInteraction(
		stringOption("level", "Level1"),
		stringOption("completion", "No damage"),
		stringOption("framerate", "60"),
		stringOption("username", "alice"),
	))

	assert.Equal(t, []string{
		notify.RecordHelp,
		"Your record for **Level1** has been submitted for approval.",
	}, f.gw.Ephemerals)
	assert.Equal(t, 1, f.store.Len())
}

func TestMessageReactionAddUsesSessionIdentity(t *testing.T) {
	f := newFixture(t, defaultSettings())
	msgID := f.submit(t)

	s := &discordgo.Session{State: discordgo.NewState()}
	s.State.User = &discordgo.User{ID: botID}

	reaction := func(userID, emoji string) *discordgo.MessageReactionAdd {
		return &discordgo.MessageReactionAdd{MessageReaction: &discordgo.MessageReaction{
			UserID:    userID,
			MessageID: msgID,
			ChannelID: approvalID,
			GuildID:   guildID,
			Emoji:     discordgo.Emoji{Name: emoji},
		}}
	}

	f.l.MessageReactionAdd(s, reaction(botID, "❌"))
	require.Equal(t, 1, f.store.Len())

	f.l.MessageReactionAdd(s, reaction("approver", "❌"))
	assert.Equal(t, 0, f.store.Len())
	assert.Equal(t, []string{msgID}, f.gw.Deleted)
}
