package models

import "time"

const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Actions reported by the vote ledger for a single vote request.
const (
	VoteActionCreated = "created"
	VoteActionUpdated = "updated"
	VoteActionDeleted = "deleted"
)

// Vote is the single record a voter may hold on a complaint. The composite
// unique index is what makes duplicate votes impossible even under races.
type Vote struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID string    `gorm:"size:50;not null;uniqueIndex:idx_vote_pair;index" json:"complaint_id"`
	StudentID   uint      `gorm:"not null;uniqueIndex:idx_vote_pair;index" json:"student_id"`
	VoteType    string    `gorm:"size:10;not null" json:"vote_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidVoteType reports whether t is one of the two recognized vote types.
func ValidVoteType(t string) bool {
	return t == VoteUp || t == VoteDown
}
