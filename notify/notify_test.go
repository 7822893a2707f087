package notify

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/gateway"
	"github.com/f8wq/TFL-Manager/gateway/gatewaytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPassesThrough(t *testing.T) {
	gw := gatewaytest.New()
	gw.AddChannel("guild", "chan")
	d := NewDispatcher(gw)

	msg, err := d.Post("chan", "hello")
	require.NoError(t, err)
	require.NoError(t, d.Reply("chan", msg.ID, "reply"))
	require.NoError(t, d.DirectMessage("user", "psst"))
	require.NoError(t, d.Ephemeral(&discordgo.Interaction{ID: "i"}, "only you"))

	assert.Equal(t, []gatewaytest.Sent{{ChannelID: "chan", Content: "hello"}}, gw.Sent)
	assert.Equal(t, []gatewaytest.Sent{{ChannelID: "chan", ReplyTo: msg.ID, Content: "reply"}}, gw.Replies)
	assert.Equal(t, []gatewaytest.Sent{{UserID: "user", Content: "psst"}}, gw.DMs)
	assert.Equal(t, []string{"only you"}, gw.Ephemerals)
}

func TestDispatcherReturnsGatewayErrors(t *testing.T) {
	gw := gatewaytest.New()
	d := NewDispatcher(gw)

	_, err := d.Post("missing", "hello")
	assert.ErrorIs(t, err, gateway.ErrNotFound)

	gw.DMErr = errors.New("cannot send messages to this user")
	assert.ErrorIs(t, d.DirectMessage("user", "psst"), gw.DMErr)
	assert.Empty(t, gw.DMs)
}
