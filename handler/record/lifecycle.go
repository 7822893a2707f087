// Package record implements the review workflow of record submissions: a
// submission is posted to the approval channel, then approved or rejected by
// a reaction from a member of the approver role.
package record

import (
	"errors"

	"github.com/f8wq/TFL-Manager/db"
	"github.com/f8wq/TFL-Manager/gateway"
	"github.com/f8wq/TFL-Manager/notify"
)

var (
	// ErrInvalidSubmission is returned when a submission field is empty.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrChannelNotFound is returned when a configured channel does not resolve.
	ErrChannelNotFound = errors.New("configured channel not found")
)

// Settings are fixed at startup.
type Settings struct {
	ApprovalChannelID string
	FinalChannelID    string
	ApproverRole      string
}

// Lifecycle moves submissions from pending to approved or rejected. Its
// methods are not safe for concurrent use; events must be delivered one at a
// time.
type Lifecycle struct {
	settings Settings
	store    db.Store
	gw       gateway.Gateway
	notify   *notify.Dispatcher
}

func NewLifecycle(settings Settings, store db.Store, gw gateway.Gateway) *Lifecycle {
	return &Lifecycle{
		settings: settings,
		store:    store,
		gw:       gw,
		notify:   notify.NewDispatcher(gw),
	}
}
