package models

import "time"

// Realtime event types pushed over a complaint's WebSocket feed.
const (
	EventConnection   = "connection"
	EventVoteUpdate   = "vote_update"
	EventStatusUpdate = "status_update"
	EventPing         = "ping"
	EventPong         = "pong"
)

// Event is the single wire shape for everything the feed pushes. Count fields
// are pointers so a legitimate zero still serializes.
type Event struct {
	Type        string `json:"type"`
	ComplaintID string `json:"complaint_id,omitempty"`
	Message     string `json:"message,omitempty"`

	Upvotes         *int   `json:"upvotes,omitempty"`
	Downvotes       *int   `json:"downvotes,omitempty"`
	TotalVotes      *int   `json:"total_votes,omitempty"`
	Action          string `json:"action,omitempty"`
	VoteType        string `json:"vote_type,omitempty"`
	PriorityUpdated *bool  `json:"priority_updated,omitempty"`
	NewPriority     string `json:"new_priority,omitempty"`

	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status,omitempty"`
	UpdatedBy string `json:"updated_by,omitempty"`
	Reason    string `json:"reason,omitempty"`

	Timestamp string `json:"timestamp"`
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewConnectionEvent is the acknowledgment sent to a freshly subscribed client.
func NewConnectionEvent(complaintID string) Event {
	return Event{
		Type:        EventConnection,
		ComplaintID: complaintID,
		Message:     "Connected to vote feed",
		Timestamp:   eventTimestamp(),
	}
}

// NewVoteEvent carries updated counters after a vote mutation.
func NewVoteEvent(complaintID string, res *VoteResult) Event {
	up, down := res.Upvotes, res.Downvotes
	total := up + down
	ev := Event{
		Type:        EventVoteUpdate,
		ComplaintID: complaintID,
		Upvotes:     &up,
		Downvotes:   &down,
		TotalVotes:  &total,
		Action:      res.Action,
		VoteType:    res.VoteType,
		Timestamp:   eventTimestamp(),
	}
	if res.PriorityUpdated {
		updated := true
		ev.PriorityUpdated = &updated
		ev.NewPriority = res.NewPriority
	}
	return ev
}

// NewStatusEvent carries a completed status transition.
func NewStatusEvent(complaintID string, res *StatusResult, updatedBy, reason string) Event {
	return Event{
		Type:        EventStatusUpdate,
		ComplaintID: complaintID,
		OldStatus:   res.OldStatus,
		NewStatus:   res.NewStatus,
		UpdatedBy:   updatedBy,
		Reason:      reason,
		Timestamp:   eventTimestamp(),
	}
}

// NewPingEvent is the liveness probe the sweeper pushes to every subscriber.
func NewPingEvent() Event {
	return Event{Type: EventPing, Timestamp: eventTimestamp()}
}

// NewPongEvent answers a client's liveness probe.
func NewPongEvent() Event {
	return Event{Type: EventPong, Timestamp: eventTimestamp()}
}
