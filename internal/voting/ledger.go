package voting

import (
	"context"
	"errors"
	"log"

	"campusvoice/backend/internal/metrics"
	"campusvoice/backend/internal/models"
)

// Store is the slice of the storage layer the ledger needs.
type Store interface {
	EnsureStudent(ctx context.Context, rollNumber, name, email, department string) (*models.Student, error)
	VoteOnComplaint(ctx context.Context, complaintID string, studentID uint, voteType string) (*models.VoteResult, error)
	GetUserVote(ctx context.Context, complaintID string, studentID uint) (*models.Vote, error)
	GetVoteStats(ctx context.Context, complaintID string) (*models.VoteStats, error)
	PublishEvent(ctx context.Context, complaintID string, ev models.Event) error
}

// Notifier receives priority escalations. Implementations must be safe to
// call with a nil receiver.
type Notifier interface {
	PriorityEscalated(complaintID, oldPriority, newPriority string)
}

// Ledger is the vote entry point for handlers. It resolves the voter's
// identity, applies the vote and fans the result out to the realtime feed.
type Ledger struct {
	store       Store
	metrics     *metrics.Metrics
	notifier    Notifier
	emailDomain string
}

func NewLedger(store Store, m *metrics.Metrics, notifier Notifier, emailDomain string) *Ledger {
	return &Ledger{
		store:       store,
		metrics:     m,
		notifier:    notifier,
		emailDomain: emailDomain,
	}
}

// Vote applies one vote request from the student identified by rollNumber.
// Unknown voters get a minimal identity row; a duplicate-vote race is retried
// once, since the first request has resolved the conflict by then.
func (l *Ledger) Vote(ctx context.Context, complaintID, rollNumber, voteType string) (*models.VoteResult, error) {
	if !models.ValidVoteType(voteType) {
		return nil, models.ErrInvalidVoteType
	}

	student, err := l.store.EnsureStudent(ctx, rollNumber, "Student", rollNumber+"@"+l.emailDomain, "Unknown")
	if err != nil {
		return nil, err
	}

	result, err := l.store.VoteOnComplaint(ctx, complaintID, student.ID, voteType)
	if errors.Is(err, models.ErrVoteConflict) {
		result, err = l.store.VoteOnComplaint(ctx, complaintID, student.ID, voteType)
	}
	if err != nil {
		return nil, err
	}

	l.metrics.ObserveVoteAction(result.Action)

	if err := l.store.PublishEvent(ctx, complaintID, models.NewVoteEvent(complaintID, result)); err != nil {
		log.Printf("voting: publish event for %s: %v", complaintID, err)
		l.metrics.IncBroadcastFailure()
	}

	if l.notifier != nil && result.PriorityUpdated && result.NewPriority == models.PriorityCritical {
		l.notifier.PriorityEscalated(complaintID, result.OldPriority, result.NewPriority)
	}
	return result, nil
}

// Stats returns the aggregate counters for a complaint.
func (l *Ledger) Stats(ctx context.Context, complaintID string) (*models.VoteStats, error) {
	return l.store.GetVoteStats(ctx, complaintID)
}

// UserVote returns the vote a student currently holds on a complaint, or nil.
func (l *Ledger) UserVote(ctx context.Context, complaintID, rollNumber string) (*models.Vote, error) {
	student, err := l.store.EnsureStudent(ctx, rollNumber, "Student", rollNumber+"@"+l.emailDomain, "Unknown")
	if err != nil {
		return nil, err
	}
	return l.store.GetUserVote(ctx, complaintID, student.ID)
}
