package notify

import (
	"fmt"
	"strings"

	"github.com/f8wq/TFL-Manager/model"
)

// Approval reactions, attached in this order.
const (
	ApproveEmoji = "✅"
	RejectEmoji  = "❌"
)

// Instructions closes every approval request. StripInstructions removes it
// again, so the two must change together.
const Instructions = "React with " + ApproveEmoji + " to approve or " + RejectEmoji + " to reject."

const (
	approvalHeader = "**New Submission for Approval**"
	approvedHeader = "**Approved Submission**"
	unknownLevel   = "unknown level"
)

// Short replies shown to users when something cannot be done.
const (
	MissingFields          = "All fields are required: level, completion, framerate, and username."
	MissingApprovalChannel = "Could not find the approval channel."
	MissingFinalChannel    = "Could not find the final channel."
	SubmitFailed           = "Could not submit your record, please try again later."
	RecordHelp             = "Use /record_submit to submit a record."
)

func body(sub *model.Submission) string {
	return fmt.Sprintf("%s\n**Level:** %s\n**Completion:** %s\n**Framerate:** %s\n**Username:** %s",
		approvalHeader, sub.Level, sub.Completion, sub.Framerate, sub.Username)
}

// ApprovalRequest is the message posted to the approval channel.
func ApprovalRequest(sub *model.Submission) string {
	return body(sub) + "\n\n" + Instructions
}

// ApprovedPost is the announcement posted to the final channel.
func ApprovedPost(sub *model.Submission) string {
	return ApprovedPostFromContent(body(sub))
}

// ApprovedPostFromContent builds the announcement from the text of an
// approval message, for submissions no longer in the store.
func ApprovedPostFromContent(content string) string {
	return approvedHeader + "\n" + StripInstructions(content)
}

// StripInstructions removes the reviewer instruction line and trims the
// surrounding whitespace. Applying it twice gives the same result.
func StripInstructions(content string) string {
	return strings.TrimSpace(strings.ReplaceAll(content, Instructions, ""))
}

func SubmittedAck(level string) string {
	return fmt.Sprintf("Your record for **%s** has been submitted for approval.", level)
}

func ApprovedBy(name string) string {
	return fmt.Sprintf("Submission approved by %s!", name)
}

func RejectedBy(name string) string {
	return fmt.Sprintf("Submission rejected by %s.", name)
}

func RejectionDM(level, name string) string {
	return fmt.Sprintf("Your record submission for **%s** was rejected by %s.", level, name)
}

// LevelOrUnknown names the level of sub, or a placeholder when sub is gone.
func LevelOrUnknown(sub *model.Submission) string {
	if sub == nil || sub.Level == "" {
		return unknownLevel
	}
	return sub.Level
}
