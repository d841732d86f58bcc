package publishing

import (
	"fmt"
	"time"

	"newsroom/internal/models"
)

// Action is a lifecycle transition request.
type Action string

const (
	// ActionSubmit moves a draft into the editor queue.
	ActionSubmit Action = "submit"
	// ActionApprove publishes a pending article with its final taxonomy
	// and schedule.
	ActionApprove Action = "approve"
	// ActionReject turns a pending article down with a reason.
	ActionReject Action = "reject"
	// ActionResubmit takes a rejected article back to draft for editing.
	ActionResubmit Action = "resubmit"
)

// TransitionPayload carries the per-action data. Approve uses Categories,
// Tags, Schedule and Editor; Reject uses Reason.
type TransitionPayload struct {
	Categories []string
	Tags       []string
	Schedule   time.Time
	Editor     string
	Reason     string
}

// Transition applies a lifecycle action to an article in place.
//
//	draft    --submit-->   pending
//	pending  --approve-->  published
//	pending  --reject-->   rejected
//	rejected --resubmit--> draft
//
// Any other combination returns ErrInvalidTransition. The legacy system
// silently accepted e.g. approving an already-published article; rejecting
// that here is a deliberate hardening.
func Transition(a *models.Article, action Action, p TransitionPayload) error {
	switch action {
	case ActionSubmit:
		if a.Status != models.StatusDraft {
			return transitionErr(a.Status, action)
		}
		a.Status = models.StatusPending

	case ActionApprove:
		if a.Status != models.StatusPending {
			return transitionErr(a.Status, action)
		}
		if p.Schedule.IsZero() {
			return fmt.Errorf("approve: schedule date is required")
		}
		schedule := p.Schedule.UTC()
		a.Status = models.StatusPublished
		a.Category = p.Categories
		a.Tags = p.Tags
		a.PublishedDate = &schedule
		a.PublishedAt = FormatDisplayTime(schedule)
		if p.Editor != "" {
			a.Editor = p.Editor
		}
		a.RejectReason = ""

	case ActionReject:
		if a.Status != models.StatusPending {
			return transitionErr(a.Status, action)
		}
		a.Status = models.StatusRejected
		a.RejectReason = p.Reason

	case ActionResubmit:
		if a.Status != models.StatusRejected {
			return transitionErr(a.Status, action)
		}
		a.Status = models.StatusDraft
		a.RejectReason = ""

	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}
	return nil
}

func transitionErr(from models.ArticleStatus, action Action) error {
	return fmt.Errorf("%w: cannot %s an article in status %q", ErrInvalidTransition, action, from)
}
