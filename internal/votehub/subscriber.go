// Package votehub is the realtime broadcast registry. Subscribers are grouped
// into per-complaint rooms; events fan out to a room without ever blocking on
// a slow connection.
package votehub

import "campusvoice/backend/internal/models"

// Subscriber is one realtime connection to a complaint's feed. The hub only
// talks to this interface; the WebSocket transport lives in WSSubscriber.
type Subscriber interface {
	GetComplaintID() string

	// TrySend queues an event without blocking. It returns false when the
	// subscriber's buffer is full or the subscriber is closed; the hub
	// treats that as a dead connection.
	TrySend(ev models.Event) bool

	// Run starts the subscriber's transport loops.
	Run()

	// Close tears the connection down with a reason. Safe to call more
	// than once.
	Close(reason string)
}

// ClientInfo is the metadata kept per subscriber for the stats endpoint.
type ClientInfo struct {
	RemoteAddr string `json:"remote_addr"`
	UserAgent  string `json:"user_agent,omitempty"`
}
