package votehub_test

import (
	"sync"

	"campusvoice/backend/internal/models"
)

// fakeSubscriber is an in-memory Subscriber with a controllable failure mode.
type fakeSubscriber struct {
	complaintID string

	mu          sync.Mutex
	received    []models.Event
	rejectSends bool
	closed      bool
	closeReason string
}

func newFakeSubscriber(complaintID string) *fakeSubscriber {
	return &fakeSubscriber{complaintID: complaintID}
}

func (f *fakeSubscriber) GetComplaintID() string { return f.complaintID }

func (f *fakeSubscriber) TrySend(ev models.Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rejectSends || f.closed {
		return false
	}
	f.received = append(f.received, ev)
	return true
}

func (f *fakeSubscriber) Run() {}

func (f *fakeSubscriber) Close(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		f.closeReason = reason
	}
}

func (f *fakeSubscriber) reject() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectSends = true
}

func (f *fakeSubscriber) events() []models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Event, len(f.received))
	copy(out, f.received)
	return out
}

func (f *fakeSubscriber) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeSubscriber) reason() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeReason
}
