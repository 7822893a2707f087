package record

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/f8wq/TFL-Manager/gateway"
	"github.com/f8wq/TFL-Manager/model"
	"github.com/f8wq/TFL-Manager/notify"
	"github.com/f8wq/TFL-Manager/utils"
)

// Reaction is a reaction added to a message.
type Reaction struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Emoji     string
	// Member is the reacting member when the event carries it.
	Member *discordgo.Member
}

// HandleReaction approves or rejects the submission behind r.MessageID.
// Reactions by selfID, outside the approval channel, with another emoji or
// by a member without the approver role are ignored without feedback.
func (l *Lifecycle) HandleReaction(selfID string, r Reaction) error {
	if r.UserID == selfID || r.ChannelID != l.settings.ApprovalChannelID {
		return nil
	}
	if r.Emoji != notify.ApproveEmoji && r.Emoji != notify.RejectEmoji {
		return nil
	}

	member, ok, err := l.authorize(r)
	if err != nil {
		return fmt.Errorf("check approver role of %s: %w", r.UserID, err)
	}
	if !ok {
		log.Printf("ignoring %s on message %s: %s lacks role %q", r.Emoji, r.MessageID, r.UserID, l.settings.ApproverRole)
		return nil
	}

	actor := gateway.DisplayName(member)
	if r.Emoji == notify.ApproveEmoji {
		return l.approve(r, actor)
	}
	return l.reject(r, actor)
}

// authorize resolves the reacting member and checks the approver role.
func (l *Lifecycle) authorize(r Reaction) (*discordgo.Member, bool, error) {
	member := r.Member
	if member == nil || member.User == nil {
		m, err := l.gw.Member(r.GuildID, r.UserID)
		if err != nil {
			if errors.Is(err, gateway.ErrNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}
		member = m
	}

	roles, err := l.gw.Roles(r.GuildID)
	if err != nil {
		return nil, false, err
	}
	return member, utils.HasRole(member, roles, l.settings.ApproverRole), nil
}

func (l *Lifecycle) approve(r Reaction, actor string) error {
	sub, err := l.store.Get(r.MessageID)
	if err != nil {
		return err
	}

	if _, err := l.gw.Channel(l.settings.FinalChannelID); err != nil {
		if !errors.Is(err, gateway.ErrNotFound) {
			return fmt.Errorf("resolve final channel: %w", err)
		}
		// The record stays pending so the approval can be retried.
		err = fmt.Errorf("final channel %s: %w", l.settings.FinalChannelID, ErrChannelNotFound)
		return errors.Join(err, l.notify.Reply(r.ChannelID, r.MessageID, notify.MissingFinalChannel))
	}

	post, err := l.approvedPost(r, sub)
	if err != nil {
		return err
	}
	if _, err := l.notify.Post(l.settings.FinalChannelID, post); err != nil {
		return fmt.Errorf("post approved submission %s: %w", r.MessageID, err)
	}

	if err := l.store.Remove(r.MessageID); err != nil {
		return err
	}
	log.Printf("[%s] submission %s approved by %s", trackingID(sub), r.MessageID, actor)

	if err := l.notify.Reply(r.ChannelID, r.MessageID, notify.ApprovedBy(actor)); err != nil {
		return fmt.Errorf("announce approval of %s: %w", r.MessageID, err)
	}
	return nil
}

// approvedPost builds the final announcement from the stored fields, or from
// the approval message text when the record is gone.
func (l *Lifecycle) approvedPost(r Reaction, sub *model.Submission) (string, error) {
	if sub != nil {
		return notify.ApprovedPost(sub), nil
	}
	msg, err := l.gw.Message(r.ChannelID, r.MessageID)
	if err != nil {
		return "", fmt.Errorf("fetch approval message %s: %w", r.MessageID, err)
	}
	return notify.ApprovedPostFromContent(msg.Content), nil
}

func (l *Lifecycle) reject(r Reaction, actor string) error {
	sub, err := l.store.Get(r.MessageID)
	if err != nil {
		return err
	}

	// Until the message is gone the rejection has not happened.
	if err := l.gw.Delete(r.ChannelID, r.MessageID); err != nil {
		return fmt.Errorf("delete rejected message %s: %w", r.MessageID, err)
	}

	var errs []error
	if _, err := l.notify.Post(r.ChannelID, notify.RejectedBy(actor)); err != nil {
		errs = append(errs, fmt.Errorf("announce rejection of %s: %w", r.MessageID, err))
	}
	if err := l.notifySubmitter(r, sub, actor); err != nil {
		errs = append(errs, err)
	}

	if err := l.store.Remove(r.MessageID); err != nil {
		errs = append(errs, err)
	}
	log.Printf("[%s] submission %s rejected by %s", trackingID(sub), r.MessageID, actor)
	return errors.Join(errs...)
}

// notifySubmitter sends the rejection DM when the submitter still resolves
// as a guild member.
func (l *Lifecycle) notifySubmitter(r Reaction, sub *model.Submission, actor string) error {
	if sub == nil || sub.SubmitterID == "" {
		return nil
	}
	guildID := sub.GuildID
	if guildID == "" {
		guildID = r.GuildID
	}
	if _, err := l.gw.Member(guildID, sub.SubmitterID); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("resolve submitter %s: %w", sub.SubmitterID, err)
	}
	if err := l.notify.DirectMessage(sub.SubmitterID, notify.RejectionDM(notify.LevelOrUnknown(sub), actor)); err != nil {
		return fmt.Errorf("notify submitter %s: %w", sub.SubmitterID, err)
	}
	return nil
}

func trackingID(sub *model.Submission) string {
	if sub == nil {
		return "-"
	}
	return sub.TrackingID
}
