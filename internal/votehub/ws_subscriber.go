package votehub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"campusvoice/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	sendBufferSize = 256
)

// WSSubscriber adapts one gorilla/websocket connection to the Subscriber
// interface. The send channel is never closed; shutdown goes through the
// done channel, so a concurrent TrySend can never hit a closed channel.
type WSSubscriber struct {
	complaintID string
	conn        *websocket.Conn
	hub         *Hub

	send      chan models.Event
	done      chan struct{}
	closeOnce sync.Once
}

func NewWSSubscriber(complaintID string, conn *websocket.Conn, hub *Hub) *WSSubscriber {
	return &WSSubscriber{
		complaintID: complaintID,
		conn:        conn,
		hub:         hub,
		send:        make(chan models.Event, sendBufferSize),
		done:        make(chan struct{}),
	}
}

func (c *WSSubscriber) GetComplaintID() string { return c.complaintID }

func (c *WSSubscriber) TrySend(ev models.Event) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- ev:
		return true
	default:
		return false
	}
}

func (c *WSSubscriber) Run() {
	go c.writePump()
	go c.readPump()
}

// Close may run on a hub goroutine while writePump is mid-write, so it only
// uses WriteControl and Conn.Close, the two write calls gorilla/websocket
// permits from a second goroutine.
func (c *WSSubscriber) Close(reason string) {
	c.closeOnce.Do(func() {
		close(c.done)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason)
		c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		c.conn.Close()
	})
}

func (c *WSSubscriber) readPump() {
	defer func() {
		c.hub.Unsubscribe(c)
		c.Close("read loop ended")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("votehub: read on %s: %v", c.complaintID, err)
			}
			return
		}
		// The feed is one-way except for an application-level ping.
		if string(message) == `ping` || string(message) == `{"type":"ping"}` {
			c.TrySend(models.NewPongEvent())
		}
	}
}

func (c *WSSubscriber) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close("write loop ended")
	}()

	for {
		select {
		case <-c.done:
			return

		case ev := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			data, err := json.Marshal(ev)
			if err != nil {
				log.Printf("votehub: encode event on %s: %v", c.complaintID, err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
