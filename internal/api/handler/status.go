package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/backend/internal/models"
)

type statusRequest struct {
	ComplaintID string `json:"complaint_id" binding:"required"`
	NewStatus   string `json:"new_status" binding:"required"`
	UpdatedBy   string `json:"updated_by_roll" binding:"required"`
	Reason      string `json:"reason"`
}

// UpdateStatus moves a complaint through the workflow.
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Workflow.UpdateStatus(c.Request.Context(), req.ComplaintID, req.NewStatus, req.UpdatedBy, req.Reason)
	switch {
	case errors.Is(err, models.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_status must be raised, opened, reviewed or closed"})
		return
	case errors.Is(err, models.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Status updated",
		"old_status": result.OldStatus,
		"new_status": result.NewStatus,
		"updated_at": result.UpdatedAt,
	})
}
