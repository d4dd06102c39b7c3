// Package handler is the HTTP surface: gin handlers over the complaint,
// voting and status services, plus the WebSocket feed endpoint. Handlers
// validate and translate; all semantics live in the services.
package handler

import (
	"campusvoice/backend/internal/complaints"
	"campusvoice/backend/internal/status"
	"campusvoice/backend/internal/votehub"
	"campusvoice/backend/internal/voting"
)

type Handler struct {
	Complaints *complaints.Service
	Ledger     *voting.Ledger
	Workflow   *status.Workflow
	Hub        *votehub.Hub
}

func NewHandler(c *complaints.Service, l *voting.Ledger, w *status.Workflow, hub *votehub.Hub) *Handler {
	return &Handler{Complaints: c, Ledger: l, Workflow: w, Hub: hub}
}
