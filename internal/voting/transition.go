// Package voting implements the vote ledger: one vote per student per
// complaint, with toggle and switch semantics, and the priority recompute
// that follows every mutation.
package voting

import "campusvoice/backend/internal/models"

// ApplyTransition mutates the complaint's counters for one vote request and
// reports the resulting action. existing is nil when the student holds no
// vote on the complaint yet.
//
//	no vote          -> created, chosen counter +1
//	same vote again  -> deleted, that counter -1 (toggle off)
//	opposite vote    -> updated, old counter -1, new counter +1 (switch)
//
// Counters never go below zero even if the stored row and the counters have
// drifted.
func ApplyTransition(c *models.Complaint, existing *models.Vote, voteType string) string {
	switch {
	case existing == nil:
		bump(c, voteType, +1)
		return models.VoteActionCreated
	case existing.VoteType == voteType:
		bump(c, voteType, -1)
		return models.VoteActionDeleted
	default:
		bump(c, existing.VoteType, -1)
		bump(c, voteType, +1)
		return models.VoteActionUpdated
	}
}

func bump(c *models.Complaint, voteType string, delta int) {
	if voteType == models.VoteUp {
		c.Upvotes = floor(c.Upvotes + delta)
	} else {
		c.Downvotes = floor(c.Downvotes + delta)
	}
}

func floor(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
