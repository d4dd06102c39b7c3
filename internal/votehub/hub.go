package votehub

import (
	"context"
	"log"
	"sync"
	"time"

	"campusvoice/backend/internal/metrics"
	"campusvoice/backend/internal/models"
)

type subscriberInfo struct {
	ConnectedAt time.Time  `json:"connected_at"`
	Client      ClientInfo `json:"client"`
}

// room holds the subscribers of one complaint's feed.
type room struct {
	mu   sync.Mutex
	subs map[Subscriber]subscriberInfo
}

// Hub routes realtime events to per-complaint rooms. Lock order is always
// hub before room; nothing holds both locks while calling into a subscriber's
// blocking methods, since TrySend never blocks.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*room

	metrics       *metrics.Metrics
	sweepInterval time.Duration
}

func NewHub(m *metrics.Metrics, sweepInterval time.Duration) *Hub {
	return &Hub{
		rooms:         make(map[string]*room),
		metrics:       m,
		sweepInterval: sweepInterval,
	}
}

// Subscribe registers sub in its complaint's room and sends the connection
// acknowledgment. The room is created on first subscriber. The insert happens
// while the hub lock is still held; releasing it between lookup and insert
// would let a concurrent last-unsubscribe drop the room and strand sub in an
// unreachable set.
func (h *Hub) Subscribe(sub Subscriber, client ClientInfo) {
	complaintID := sub.GetComplaintID()

	h.mu.Lock()
	r, ok := h.rooms[complaintID]
	if !ok {
		r = &room{subs: make(map[Subscriber]subscriberInfo)}
		h.rooms[complaintID] = r
	}
	r.mu.Lock()
	r.subs[sub] = subscriberInfo{ConnectedAt: time.Now().UTC(), Client: client}
	r.mu.Unlock()
	h.mu.Unlock()

	sub.TrySend(models.NewConnectionEvent(complaintID))
}

// Unsubscribe removes sub from its room and drops the room when it empties.
// It does not close the subscriber; the caller owns the connection teardown.
func (h *Hub) Unsubscribe(sub Subscriber) {
	complaintID := sub.GetComplaintID()

	h.mu.RLock()
	r, ok := h.rooms[complaintID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	r.mu.Lock()
	delete(r.subs, sub)
	empty := len(r.subs) == 0
	r.mu.Unlock()

	if empty {
		h.dropRoomIfEmpty(complaintID, r)
	}
}

func (h *Hub) dropRoomIfEmpty(complaintID string, r *room) {
	h.mu.Lock()
	defer h.mu.Unlock()
	current, ok := h.rooms[complaintID]
	if !ok || current != r {
		return
	}
	r.mu.Lock()
	empty := len(r.subs) == 0
	r.mu.Unlock()
	if empty {
		delete(h.rooms, complaintID)
	}
}

// BroadcastVote fans a vote event out to the complaint's room.
func (h *Hub) BroadcastVote(complaintID string, ev models.Event) {
	h.broadcast(complaintID, ev)
}

// BroadcastStatus fans a status event out to the complaint's room.
func (h *Hub) BroadcastStatus(complaintID string, ev models.Event) {
	h.broadcast(complaintID, ev)
}

// broadcast delivers ev to every subscriber of the complaint. A subscriber
// whose send fails is removed and closed; the rest still get the event.
func (h *Hub) broadcast(complaintID string, ev models.Event) {
	h.mu.RLock()
	r, ok := h.rooms[complaintID]
	h.mu.RUnlock()
	if !ok {
		return
	}

	r.mu.Lock()
	targets := make([]Subscriber, 0, len(r.subs))
	for sub := range r.subs {
		targets = append(targets, sub)
	}
	r.mu.Unlock()

	var failed []Subscriber
	for _, sub := range targets {
		if !sub.TrySend(ev) {
			failed = append(failed, sub)
		}
	}
	for _, sub := range failed {
		log.Printf("votehub: dropping unresponsive subscriber on %s", complaintID)
		h.metrics.IncBroadcastFailure()
		h.Unsubscribe(sub)
		sub.Close("unresponsive connection")
	}
}

// Sweep pings every subscriber and removes the ones whose buffers are full.
// A subscriber that cannot even take a ping will not take real events either.
func (h *Hub) Sweep() int {
	h.mu.RLock()
	roomIDs := make([]string, 0, len(h.rooms))
	for id := range h.rooms {
		roomIDs = append(roomIDs, id)
	}
	h.mu.RUnlock()

	removed := 0
	ping := models.NewPingEvent()
	for _, id := range roomIDs {
		h.mu.RLock()
		r, ok := h.rooms[id]
		h.mu.RUnlock()
		if !ok {
			continue
		}

		r.mu.Lock()
		targets := make([]Subscriber, 0, len(r.subs))
		for sub := range r.subs {
			targets = append(targets, sub)
		}
		r.mu.Unlock()

		for _, sub := range targets {
			if sub.TrySend(ping) {
				continue
			}
			h.metrics.IncSweepRemoval()
			h.Unsubscribe(sub)
			sub.Close("liveness check failed")
			removed++
		}
	}
	if removed > 0 {
		log.Printf("votehub: sweep removed %d dead subscribers", removed)
	}
	return removed
}

// RunSweeper runs the liveness sweep on a ticker until ctx is canceled.
func (h *Hub) RunSweeper(ctx context.Context) {
	ticker := time.NewTicker(h.sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Sweep()
		}
	}
}

// Shutdown closes every subscriber and empties the registry. Safe to call
// twice and on an empty hub.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	rooms := h.rooms
	h.rooms = make(map[string]*room)
	h.mu.Unlock()

	for _, r := range rooms {
		r.mu.Lock()
		targets := make([]Subscriber, 0, len(r.subs))
		for sub := range r.subs {
			targets = append(targets, sub)
		}
		r.subs = make(map[Subscriber]subscriberInfo)
		r.mu.Unlock()

		for _, sub := range targets {
			sub.Close("server shutdown")
		}
	}
}

// ConnectionCount returns the subscriber count for one complaint.
func (h *Hub) ConnectionCount(complaintID string) int {
	h.mu.RLock()
	r, ok := h.rooms[complaintID]
	h.mu.RUnlock()
	if !ok {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// RoomStats is the per-complaint entry of the stats endpoint.
type RoomStats struct {
	ComplaintID string           `json:"complaint_id"`
	Subscribers int              `json:"subscribers"`
	Clients     []subscriberInfo `json:"clients"`
}

// Stats snapshots every room for the stats endpoint.
func (h *Hub) Stats() []RoomStats {
	h.mu.RLock()
	type entry struct {
		id string
		r  *room
	}
	entries := make([]entry, 0, len(h.rooms))
	for id, r := range h.rooms {
		entries = append(entries, entry{id, r})
	}
	h.mu.RUnlock()

	stats := make([]RoomStats, 0, len(entries))
	for _, e := range entries {
		e.r.mu.Lock()
		rs := RoomStats{ComplaintID: e.id, Subscribers: len(e.r.subs)}
		for _, info := range e.r.subs {
			rs.Clients = append(rs.Clients, info)
		}
		e.r.mu.Unlock()
		stats = append(stats, rs)
	}
	return stats
}
