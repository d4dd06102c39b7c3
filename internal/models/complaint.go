package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Complaint statuses. Transitions are unrestricted but always audited.
const (
	StatusRaised   = "raised"
	StatusOpened   = "opened"
	StatusReviewed = "reviewed"
	StatusClosed   = "closed"
)

// Priority labels, from the scorer's thresholds.
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const (
	VisibilityPublic  = "Public"
	VisibilityPrivate = "Private"
)

// Complaint is the central record of the system. Vote counters, priority and
// status are never written by handlers directly; only the vote ledger and the
// status workflow mutate them, inside a row-locked transaction.
type Complaint struct {
	ID        string `gorm:"size:50;primaryKey" json:"complaint_id"`
	StudentID uint   `gorm:"not null;index" json:"student_id"`
	Student   Student

	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Visibility  string `gorm:"size:20;not null;default:Public;index" json:"visibility"`
	ImageURL    string `gorm:"size:500" json:"image_url"`

	Upvotes   int `gorm:"not null;default:0" json:"upvotes"`
	Downvotes int `gorm:"not null;default:0" json:"downvotes"`

	Status        string `gorm:"size:20;not null;default:raised;index" json:"status"`
	Priority      string `gorm:"size:20;not null;default:medium;index" json:"priority"`
	PriorityScore int    `gorm:"not null;default:0" json:"priority_score"`

	// Analysis holds the raw classification payload as submitted-time JSON.
	// It is treated as opaque by everything except the priority recompute.
	Analysis  string         `gorm:"type:text" json:"-"`
	Category  string         `gorm:"size:50;index" json:"category"`
	KeyIssues pq.StringArray `gorm:"type:text[]" json:"key_issues"`

	AssignedAuthority string `gorm:"size:100" json:"assigned_authority"`
	AuthorityEmail    string `gorm:"size:100" json:"authority_email"`

	SubmittedAt time.Time  `gorm:"not null;index" json:"submitted_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`
}

// BeforeCreate is a GORM hook that assigns a UUID and the submission time
// when they are not set yet.
func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now().UTC()
	}
	return nil
}

// ParseAnalysis decodes the stored classification payload. The second return
// is false when no payload is stored or it does not decode.
func (c *Complaint) ParseAnalysis() (Analysis, bool) {
	var a Analysis
	if c.Analysis == "" {
		return a, false
	}
	if err := json.Unmarshal([]byte(c.Analysis), &a); err != nil {
		return Analysis{}, false
	}
	return a, true
}

// ValidStatus reports whether s is part of the status vocabulary.
func ValidStatus(s string) bool {
	switch s {
	case StatusRaised, StatusOpened, StatusReviewed, StatusClosed:
		return true
	}
	return false
}
