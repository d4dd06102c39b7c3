package models

import "time"

// VoteResult is the vote ledger's report for a single vote request.
type VoteResult struct {
	Action          string `json:"action"`
	VoteType        string `json:"vote_type"`
	Upvotes         int    `json:"upvotes"`
	Downvotes       int    `json:"downvotes"`
	PriorityUpdated bool   `json:"priority_updated"`
	OldPriority     string `json:"old_priority,omitempty"`
	NewPriority     string `json:"new_priority,omitempty"`
}

// VoteStats are the aggregate counters for one complaint.
type VoteStats struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Total     int `json:"total"`
	NetVotes  int `json:"net_votes"`
}

// StatusResult reports a completed status transition.
type StatusResult struct {
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OverallStats is the system-wide dashboard summary.
type OverallStats struct {
	TotalStudents   int64            `json:"total_students"`
	TotalComplaints int64            `json:"total_complaints"`
	TotalVotes      int64            `json:"total_votes"`
	ByStatus        map[string]int64 `json:"complaints_by_status"`
	ByPriority      map[string]int64 `json:"complaints_by_priority"`
}
