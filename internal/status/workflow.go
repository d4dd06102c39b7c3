// Package status implements the complaint status workflow. Every transition,
// including a no-op one, writes an audit row and is broadcast to the
// complaint's realtime feed.
package status

import (
	"context"
	"log"
	"time"

	"campusvoice/backend/internal/models"
)

// Apply mutates the complaint for one status transition and returns the audit
// row to persist alongside it. ResolvedAt is stamped on every transition into
// closed and is never cleared on reopen, so it records the most recent close.
func Apply(c *models.Complaint, newStatus string, updatedBy uint, reason string, now time.Time) models.StatusUpdate {
	audit := models.StatusUpdate{
		ComplaintID: c.ID,
		OldStatus:   c.Status,
		NewStatus:   newStatus,
		UpdatedBy:   updatedBy,
		Reason:      reason,
		UpdatedAt:   now,
	}

	c.Status = newStatus
	c.UpdatedAt = now
	if newStatus == models.StatusClosed {
		c.ResolvedAt = &now
	}
	return audit
}

// Store is the slice of the storage layer the workflow needs.
type Store interface {
	EnsureStudent(ctx context.Context, rollNumber, name, email, department string) (*models.Student, error)
	UpdateComplaintStatus(ctx context.Context, complaintID, newStatus string, updatedBy uint, reason string) (*models.StatusResult, error)
	PublishEvent(ctx context.Context, complaintID string, ev models.Event) error
}

// Workflow validates and executes status transitions on behalf of authority
// users identified by roll number.
type Workflow struct {
	store       Store
	emailDomain string
}

func NewWorkflow(store Store, emailDomain string) *Workflow {
	return &Workflow{store: store, emailDomain: emailDomain}
}

// UpdateStatus moves a complaint to newStatus. Any status may follow any
// other; the audit trail is the safeguard, not a transition table.
func (w *Workflow) UpdateStatus(ctx context.Context, complaintID, newStatus, actorRoll, reason string) (*models.StatusResult, error) {
	if !models.ValidStatus(newStatus) {
		return nil, models.ErrInvalidStatus
	}

	actor, err := w.store.EnsureStudent(ctx, actorRoll, "Authority User", actorRoll+"@"+w.emailDomain, "Administration")
	if err != nil {
		return nil, err
	}

	res, err := w.store.UpdateComplaintStatus(ctx, complaintID, newStatus, actor.ID, reason)
	if err != nil {
		return nil, err
	}

	ev := models.NewStatusEvent(complaintID, res, actor.Name, reason)
	if err := w.store.PublishEvent(ctx, complaintID, ev); err != nil {
		log.Printf("status: publish event for %s: %v", complaintID, err)
	}
	return res, nil
}
