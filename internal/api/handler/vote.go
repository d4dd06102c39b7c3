package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campusvoice/backend/internal/models"
)

type voteRequest struct {
	ComplaintID string `json:"complaint_id" binding:"required"`
	RollNumber  string `json:"roll_number" binding:"required"`
	VoteType    string `json:"vote_type" binding:"required"`
}

// Vote applies one vote request: create, toggle off or switch.
func (h *Handler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Ledger.Vote(c.Request.Context(), req.ComplaintID, req.RollNumber, req.VoteType)
	switch {
	case errors.Is(err, models.ErrInvalidVoteType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "vote_type must be upvote or downvote"})
		return
	case errors.Is(err, models.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record vote"})
		return
	}

	resp := gin.H{
		"success":          true,
		"message":          voteMessage(result.Action),
		"action":           result.Action,
		"vote_type":        result.VoteType,
		"upvotes":          result.Upvotes,
		"downvotes":        result.Downvotes,
		"net_votes":        result.Upvotes - result.Downvotes,
		"priority_updated": result.PriorityUpdated,
	}
	if result.PriorityUpdated {
		resp["old_priority"] = result.OldPriority
		resp["new_priority"] = result.NewPriority
	}
	c.JSON(http.StatusOK, resp)
}

func voteMessage(action string) string {
	switch action {
	case models.VoteActionCreated:
		return "Vote recorded"
	case models.VoteActionDeleted:
		return "Vote removed"
	default:
		return "Vote changed"
	}
}

// VoteStats returns the aggregate counters for one complaint, and the
// caller's own vote when roll_number is supplied.
func (h *Handler) VoteStats(c *gin.Context) {
	complaintID := c.Param("complaint_id")

	stats, err := h.Ledger.Stats(c.Request.Context(), complaintID)
	if errors.Is(err, models.ErrComplaintNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vote stats"})
		return
	}

	resp := gin.H{
		"complaint_id": complaintID,
		"upvotes":      stats.Upvotes,
		"downvotes":    stats.Downvotes,
		"total":        stats.Total,
		"net_votes":    stats.NetVotes,
	}
	if roll := c.Query("roll_number"); roll != "" {
		vote, err := h.Ledger.UserVote(c.Request.Context(), complaintID, roll)
		if err == nil && vote != nil {
			resp["user_vote"] = vote.VoteType
		}
	}
	c.JSON(http.StatusOK, resp)
}
