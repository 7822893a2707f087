package record

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/command/def"
	"github.com/f8wq/TFL-Manager/handler"
	"github.com/f8wq/TFL-Manager/notify"
)

// RegisterHandlers routes the record commands to l.
func RegisterHandlers(l *Lifecycle) {
	handler.AddCommandHandler(def.RecordCommand.Name, l.recordCommandHandler)
	handler.AddCommandHandler(def.RecordSubmitCommand.Name, l.recordSubmitCommandHandler)
}

func (l *Lifecycle) recordCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := l.notify.Ephemeral(i.Interaction, notify.RecordHelp); err != nil {
		log.Printf("Error answering /%s: %v", def.RecordCommand.Name, err)
	}
}

func (l *Lifecycle) recordSubmitCommandHandler(s *discordgo.Session, i *discordgo.InteractionCreate) {
	req := submitRequestFrom(i)
	if err := l.Submit(i.Interaction, req); err != nil {
		log.Printf("Error handling /%s from %s: %v", def.RecordSubmitCommand.Name, req.SubmitterID, err)
	}
}

// MessageReactionAdd handles reaction additions.
func (l *Lifecycle) MessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	err := l.HandleReaction(s.State.User.ID, Reaction{
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     r.Emoji.Name,
		Member:    r.Member,
	})
	if err != nil {
		log.Printf("Error handling reaction %s on message %s: %v", r.Emoji.Name, r.MessageID, err)
	}
}

func submitRequestFrom(i *discordgo.InteractionCreate) SubmitRequest {
	var req SubmitRequest
	switch {
	case i.Member != nil && i.Member.User != nil:
		req.SubmitterID = i.Member.User.ID
	case i.User != nil:
		req.SubmitterID = i.User.ID
	}

	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch opt.Name {
		case def.OptionLevel:
			req.Level = opt.StringValue()
		case def.OptionCompletion:
			req.Completion = opt.StringValue()
		case def.OptionFramerate:
			req.Framerate = opt.StringValue()
		case def.OptionUsername:
			req.Username = opt.StringValue()
		}
	}
	return req
}
