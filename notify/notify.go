// Package notify sends the user-facing messages of the record workflow.
package notify

import (
	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/gateway"
)

// Dispatcher passes messages straight to the gateway: no buffering, no
// retries. Errors are returned to the caller untouched.
type Dispatcher struct {
	gw gateway.Gateway
}

func NewDispatcher(gw gateway.Gateway) *Dispatcher {
	return &Dispatcher{gw: gw}
}

// Ephemeral answers an interaction with a message only the invoker sees.
func (d *Dispatcher) Ephemeral(i *discordgo.Interaction, content string) error {
	return d.gw.RespondEphemeral(i, content)
}

// Post sends content to a channel.
func (d *Dispatcher) Post(channelID, content string) (*discordgo.Message, error) {
	return d.gw.Send(channelID, content)
}

// Reply answers messageID in its channel.
func (d *Dispatcher) Reply(channelID, messageID, content string) error {
	_, err := d.gw.Reply(channelID, messageID, content)
	return err
}

// DirectMessage sends content privately to userID.
func (d *Dispatcher) DirectMessage(userID, content string) error {
	return d.gw.DirectMessage(userID, content)
}
