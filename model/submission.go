package model

import "time"

// Submission is a record waiting for review in the approval channel.
// It is keyed by MessageID, the id of the approval message.
type Submission struct {
	MessageID   string
	SubmitterID string
	GuildID     string
	Level       string
	Completion  string
	Framerate   string
	Username    string
	TrackingID  string
	CreatedAt   time.Time
}
