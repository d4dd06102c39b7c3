package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"campusvoice/backend/internal/votehub"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeVoteFeed upgrades the connection and subscribes it to the complaint's
// realtime feed.
func (h *Handler) ServeVoteFeed(c *gin.Context) {
	complaintID := c.Param("complaint_id")
	if complaintID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "complaint_id is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
		return
	}

	sub := votehub.NewWSSubscriber(complaintID, conn, h.Hub)
	h.Hub.Subscribe(sub, votehub.ClientInfo{
		RemoteAddr: c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	sub.Run()
}

// WSStats reports the current rooms and their subscribers.
func (h *Handler) WSStats(c *gin.Context) {
	stats := h.Hub.Stats()
	total := 0
	for _, rs := range stats {
		total += rs.Subscribers
	}
	c.JSON(http.StatusOK, gin.H{
		"total_subscribers": total,
		"rooms":             stats,
	})
}
