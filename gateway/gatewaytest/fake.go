// Package gatewaytest provides an in-memory gateway.Gateway for tests.
package gatewaytest

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/gateway"
)

// Sent is a message the fake posted, replied or sent privately.
type Sent struct {
	ChannelID string
	ReplyTo   string
	UserID    string
	Content   string
}

// Reaction is a reaction the fake attached to a message.
type Reaction struct {
	ChannelID string
	MessageID string
	Emoji     string
}

// Fake records every outbound call. Channels, members and roles must be
// registered before they resolve. The *Err fields inject failures.
type Fake struct {
	mu sync.Mutex

	channels map[string]*discordgo.Channel
	members  map[string]*discordgo.Member
	roles    map[string][]*discordgo.Role
	messages map[string]*discordgo.Message
	nextID   int

	Sent       []Sent
	Replies    []Sent
	DMs        []Sent
	Ephemerals []string
	Reactions  []Reaction
	Deleted    []string

	SendErr   error
	ReplyErr  error
	ReactErr  error
	DeleteErr error
	DMErr     error
	RolesErr  error
}

func New() *Fake {
	return &Fake{
		channels: make(map[string]*discordgo.Channel),
		members:  make(map[string]*discordgo.Member),
		roles:    make(map[string][]*discordgo.Role),
		messages: make(map[string]*discordgo.Message),
	}
}

// AddChannel makes channelID resolvable inside guildID.
func (f *Fake) AddChannel(guildID, channelID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.channels[channelID] = &discordgo.Channel{ID: channelID, GuildID: guildID}
}

// AddRole registers a guild role.
func (f *Fake) AddRole(guildID, roleID, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roles[guildID] = append(f.roles[guildID], &discordgo.Role{ID: roleID, Name: name})
}

// AddMember registers a guild member with the given role ids.
func (f *Fake) AddMember(guildID, userID, name string, roleIDs ...string) *discordgo.Member {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := &discordgo.Member{
		GuildID: guildID,
		User:    &discordgo.User{ID: userID, Username: name},
		Roles:   roleIDs,
	}
	f.members[guildID+"/"+userID] = m
	return m
}

// Live reports whether messageID was posted and not deleted.
func (f *Fake) Live(messageID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.messages[messageID]
	return ok
}

func (f *Fake) Channel(channelID string) (*discordgo.Channel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch, ok := f.channels[channelID]
	if !ok {
		return nil, fmt.Errorf("channel %s: %w", channelID, gateway.ErrNotFound)
	}
	return ch, nil
}

func (f *Fake) Message(channelID, messageID string) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := f.messages[messageID]
	if !ok || msg.ChannelID != channelID {
		return nil, fmt.Errorf("message %s: %w", messageID, gateway.ErrNotFound)
	}
	return msg, nil
}

func (f *Fake) Send(channelID, content string) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.SendErr != nil {
		return nil, f.SendErr
	}
	if _, ok := f.channels[channelID]; !ok {
		return nil, fmt.Errorf("send to channel %s: %w", channelID, gateway.ErrNotFound)
	}
	msg := f.post(channelID, content)
	f.Sent = append(f.Sent, Sent{ChannelID: channelID, Content: content})
	return msg, nil
}

func (f *Fake) Reply(channelID, messageID, content string) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReplyErr != nil {
		return nil, f.ReplyErr
	}
	msg := f.post(channelID, content)
	f.Replies = append(f.Replies, Sent{ChannelID: channelID, ReplyTo: messageID, Content: content})
	return msg, nil
}

func (f *Fake) React(channelID, messageID, emoji string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ReactErr != nil {
		return f.ReactErr
	}
	f.Reactions = append(f.Reactions, Reaction{ChannelID: channelID, MessageID: messageID, Emoji: emoji})
	return nil
}

func (f *Fake) Delete(channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	if _, ok := f.messages[messageID]; !ok {
		return fmt.Errorf("delete message %s: %w", messageID, gateway.ErrNotFound)
	}
	delete(f.messages, messageID)
	f.Deleted = append(f.Deleted, messageID)
	return nil
}

func (f *Fake) Member(guildID, userID string) (*discordgo.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[guildID+"/"+userID]
	if !ok {
		return nil, fmt.Errorf("member %s: %w", userID, gateway.ErrNotFound)
	}
	return m, nil
}

func (f *Fake) Roles(guildID string) ([]*discordgo.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RolesErr != nil {
		return nil, f.RolesErr
	}
	return f.roles[guildID], nil
}

func (f *Fake) DirectMessage(userID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DMErr != nil {
		return f.DMErr
	}
	f.DMs = append(f.DMs, Sent{UserID: userID, Content: content})
	return nil
}

func (f *Fake) RespondEphemeral(interaction *discordgo.Interaction, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ephemerals = append(f.Ephemerals, content)
	return nil
}

// post must be called with mu held.
func (f *Fake) post(channelID, content string) *discordgo.Message {
	f.nextID++
	msg := &discordgo.Message{
		ID:        fmt.Sprintf("msg-%d", f.nextID),
		ChannelID: channelID,
		Content:   content,
	}
	if ch, ok := f.channels[channelID]; ok {
		msg.GuildID = ch.GuildID
	}
	f.messages[msg.ID] = msg
	return msg
}

var _ gateway.Gateway = (*Fake)(nil)
