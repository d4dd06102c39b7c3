package models

import "time"

// StatusUpdate is one audit row per status transition. Append-only; rows are
// written even when the new status equals the old one.
type StatusUpdate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID string    `gorm:"size:50;not null;index" json:"complaint_id"`
	OldStatus   string    `gorm:"size:20;not null" json:"old_status"`
	NewStatus   string    `gorm:"size:20;not null" json:"new_status"`
	UpdatedBy   uint      `json:"updated_by"`
	Reason      string    `gorm:"type:text" json:"reason"`
	UpdatedAt   time.Time `gorm:"not null;index" json:"updated_at"`
}

// SubmissionMeta tracks where a complaint came from.
type SubmissionMeta struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID string    `gorm:"size:50;index" json:"complaint_id"`
	Source      string    `gorm:"size:100;not null;default:Campus Voice SREC" json:"source"`
	UserAgent   string    `gorm:"size:500" json:"user_agent"`
	IPAddress   string    `gorm:"size:50" json:"ip_address"`
	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`
}
