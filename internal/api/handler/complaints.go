package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campusvoice/backend/internal/complaints"
	"campusvoice/backend/internal/models"
)

type submitRequest struct {
	RollNumber  string `json:"roll_number" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	StayType    string `json:"stay_type"`
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Visibility  string `json:"visibility" binding:"omitempty,oneof=Public Private"`
	ImageURL    string `json:"image_url"`
}

// Submit files a new complaint.
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.Complaints.Submit(c.Request.Context(), complaints.Submission{
		RollNumber:  req.RollNumber,
		Name:        req.Name,
		Email:       req.Email,
		Department:  req.Department,
		StayType:    req.StayType,
		Title:       req.Title,
		Description: req.Description,
		Visibility:  req.Visibility,
		ImageURL:    req.ImageURL,
		UserAgent:   c.Request.UserAgent(),
		IPAddress:   c.ClientIP(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit complaint"})
		return
	}

	resp := gin.H{
		"success":         true,
		"message":         "Complaint submitted successfully",
		"complaint_id":    complaint.ID,
		"priority":        complaint.Priority,
		"category":        complaint.Category,
		"assigned_to":     complaint.AssignedAuthority,
		"authority_email": complaint.AuthorityEmail,
		"status":          complaint.Status,
	}
	if analysis, ok := complaint.ParseAnalysis(); ok {
		resp["urgency_score"] = analysis.UrgencyScore
		resp["summary"] = analysis.Summary
	}
	c.JSON(http.StatusCreated, resp)
}

// MyComplaints lists everything the given student has filed.
func (h *Handler) MyComplaints(c *gin.Context) {
	rollNumber := c.Query("roll_number")
	if rollNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roll_number is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.Complaints.MyComplaints(c.Request.Context(), rollNumber, limit, offset)
	if errors.Is(err, models.ErrStudentNotFound) {
		c.JSON(http.StatusOK, gin.H{"complaints": []models.Complaint{}, "count": 0})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list, "count": len(list)})
}

// PublicFeed lists public complaints, most upvoted first.
func (h *Handler) PublicFeed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.Complaints.PublicFeed(c.Request.Context(), limit, offset, c.Query("status"), c.Query("priority"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"complaints": list, "count": len(list)})
}

// Detail returns one complaint by ID.
func (h *Handler) Detail(c *gin.Context) {
	complaint, err := h.Complaints.Detail(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrComplaintNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load complaint"})
		return
	}

	resp := gin.H{"complaint": complaint}
	if analysis, ok := complaint.ParseAnalysis(); ok {
		resp["analysis"] = analysis
	}
	c.JSON(http.StatusOK, resp)
}

// AuthorityComplaints lists the complaints routed to one authority category.
func (h *Handler) AuthorityComplaints(c *gin.Context) {
	list, authority, err := h.Complaints.AuthorityComplaints(c.Request.Context(), c.Param("authority_type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load complaints"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authority":  authority,
		"complaints": list,
		"count":      len(list),
	})
}

// RecalculatePriority rescores a complaint from its stored classification and
// current votes.
func (h *Handler) RecalculatePriority(c *gin.Context) {
	complaint, err := h.Complaints.RecalculatePriority(c.Request.Context(), c.Param("id"))
	if errors.Is(err, models.ErrComplaintNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "complaint not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recalculate priority"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"complaint_id":   complaint.ID,
		"priority":       complaint.Priority,
		"priority_score": complaint.PriorityScore,
	})
}

// Stats returns the system-wide dashboard counters.
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Complaints.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Health is the liveness endpoint.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "campusvoice"})
}
