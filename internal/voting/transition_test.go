package voting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/voting"
)

func TestApplyTransition_FirstVoteCreates(t *testing.T) {
	c := &models.Complaint{Upvotes: 3, Downvotes: 1}

	action := voting.ApplyTransition(c, nil, models.VoteUp)

	assert.Equal(t, models.VoteActionCreated, action)
	assert.Equal(t, 4, c.Upvotes)
	assert.Equal(t, 1, c.Downvotes)
}

func TestApplyTransition_SameVoteToggles(t *testing.T) {
	c := &models.Complaint{Upvotes: 4, Downvotes: 1}
	existing := &models.Vote{VoteType: models.VoteUp}

	action := voting.ApplyTransition(c, existing, models.VoteUp)

	assert.Equal(t, models.VoteActionDeleted, action)
	assert.Equal(t, 3, c.Upvotes)
	assert.Equal(t, 1, c.Downvotes)
}

func TestApplyTransition_OppositeVoteSwitches(t *testing.T) {
	c := &models.Complaint{Upvotes: 4, Downvotes: 1}
	existing := &models.Vote{VoteType: models.VoteDown}

	action := voting.ApplyTransition(c, existing, models.VoteUp)

	assert.Equal(t, models.VoteActionUpdated, action)
	assert.Equal(t, 5, c.Upvotes)
	assert.Equal(t, 0, c.Downvotes)
}

func TestApplyTransition_CountersNeverNegative(t *testing.T) {
	c := &models.Complaint{Upvotes: 0, Downvotes: 0}
	existing := &models.Vote{VoteType: models.VoteUp}

	action := voting.ApplyTransition(c, existing, models.VoteUp)

	assert.Equal(t, models.VoteActionDeleted, action)
	assert.Equal(t, 0, c.Upvotes)
	assert.Equal(t, 0, c.Downvotes)
}
