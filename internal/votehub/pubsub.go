package votehub

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"campusvoice/backend/internal/models"
)

// Listener bridges the Redis events channel into the hub, so every API
// process broadcasts the same events regardless of which one persisted the
// mutation.
type Listener struct {
	hub     *Hub
	rdb     *redis.Client
	channel string
}

func NewListener(hub *Hub, rdb *redis.Client, channel string) *Listener {
	return &Listener{hub: hub, rdb: rdb, channel: channel}
}

// Run consumes events until ctx is canceled. Undecodable or unknown messages
// are logged and skipped; the subscription itself stays up.
func (l *Listener) Run(ctx context.Context) error {
	sub := l.rdb.Subscribe(ctx, l.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev models.Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("votehub: decode pubsub message: %v", err)
				continue
			}
			switch ev.Type {
			case models.EventVoteUpdate:
				l.hub.BroadcastVote(ev.ComplaintID, ev)
			case models.EventStatusUpdate:
				l.hub.BroadcastStatus(ev.ComplaintID, ev)
			default:
				log.Printf("votehub: ignoring pubsub event type %q", ev.Type)
			}
		}
	}
}
