package record

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/gateway"
	"github.com/f8wq/TFL-Manager/model"
	"github.com/f8wq/TFL-Manager/notify"
	"github.com/google/uuid"
)

// SubmitRequest holds the options of /record_submit.
type SubmitRequest struct {
	SubmitterID string
	Level       string
	Completion  string
	Framerate   string
	Username    string
}

func (r SubmitRequest) validate() error {
	for _, field := range []string{r.Level, r.Completion, r.Framerate, r.Username} {
		if strings.TrimSpace(field) == "" {
			return ErrInvalidSubmission
		}
	}
	return nil
}

// Submit posts req to the approval channel, attaches the approve and reject
// reactions and stores the submission under the new message id. The
// submitter is answered ephemerally in every case.
func (l *Lifecycle) Submit(i *discordgo.Interaction, req SubmitRequest) error {
	if err := req.validate(); err != nil {
		return errors.Join(err, l.notify.Ephemeral(i, notify.MissingFields))
	}

	channel, err := l.gw.Channel(l.settings.ApprovalChannelID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			err = fmt.Errorf("approval channel %s: %w", l.settings.ApprovalChannelID, ErrChannelNotFound)
		}
		return errors.Join(err, l.notify.Ephemeral(i, notify.MissingApprovalChannel))
	}

	sub := &model.Submission{
		SubmitterID: req.SubmitterID,
		GuildID:     channel.GuildID,
		Level:       req.Level,
		Completion:  req.Completion,
		Framerate:   req.Framerate,
		Username:    req.Username,
		TrackingID:  uuid.New().String(),
		CreatedAt:   time.Now(),
	}

	msg, err := l.notify.Post(channel.ID, notify.ApprovalRequest(sub))
	if err != nil {
		err = fmt.Errorf("post approval request: %w", err)
		return errors.Join(err, l.notify.Ephemeral(i, notify.SubmitFailed))
	}
	sub.MessageID = msg.ID
	if msg.GuildID != "" {
		sub.GuildID = msg.GuildID
	}

	if err := l.store.Put(sub); err != nil {
		// Without a stored record the request cannot be reviewed; take it down.
		if delErr := l.gw.Delete(channel.ID, msg.ID); delErr != nil {
			log.Printf("[%s] failed to delete unstored approval message %s: %v", sub.TrackingID, msg.ID, delErr)
		}
		return errors.Join(err, l.notify.Ephemeral(i, notify.SubmitFailed))
	}

	for _, emoji := range []string{notify.ApproveEmoji, notify.RejectEmoji} {
		if err := l.gw.React(channel.ID, msg.ID, emoji); err != nil {
			log.Printf("[%s] failed to add %s to approval message %s: %v", sub.TrackingID, emoji, msg.ID, err)
		}
	}

	log.Printf("[%s] submission for %q by %s pending as message %s", sub.TrackingID, sub.Level, sub.SubmitterID, msg.ID)
	return l.notify.Ephemeral(i, notify.SubmittedAck(sub.Level))
}
