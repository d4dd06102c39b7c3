package voting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/voting"
)

const testDomain = "srec.ac.in"

func TestLedger_Vote_RejectsUnknownVoteType(t *testing.T) {
	store := new(MockStore)
	ledger := voting.NewLedger(store, nil, nil, testDomain)

	_, err := ledger.Vote(context.Background(), "c1", "9001", "sideways")

	assert.ErrorIs(t, err, models.ErrInvalidVoteType)
	store.AssertNotCalled(t, "EnsureStudent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedger_Vote_ResolvesVoterAndPublishes(t *testing.T) {
	store := new(MockStore)
	ledger := voting.NewLedger(store, nil, nil, testDomain)

	student := &models.Student{ID: 7, RollNumber: "9001"}
	result := &models.VoteResult{Action: models.VoteActionCreated, VoteType: models.VoteUp, Upvotes: 1}

	store.On("EnsureStudent", mock.Anything, "9001", "Student", "9001@srec.ac.in", "Unknown").Return(student, nil)
	store.On("VoteOnComplaint", mock.Anything, "c1", uint(7), models.VoteUp).Return(result, nil)
	store.On("PublishEvent", mock.Anything, "c1", mock.MatchedBy(func(ev models.Event) bool {
		return ev.Type == models.EventVoteUpdate && ev.Action == models.VoteActionCreated
	})).Return(nil)

	got, err := ledger.Vote(context.Background(), "c1", "9001", models.VoteUp)

	require.NoError(t, err)
	assert.Equal(t, result, got)
	store.AssertExpectations(t)
}

func TestLedger_Vote_PublishFailureDoesNotFailVote(t *testing.T) {
	store := new(MockStore)
	ledger := voting.NewLedger(store, nil, nil, testDomain)

	student := &models.Student{ID: 7}
	result := &models.VoteResult{Action: models.VoteActionDeleted, VoteType: models.VoteUp}

	store.On("EnsureStudent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(student, nil)
	store.On("VoteOnComplaint", mock.Anything, "c1", uint(7), models.VoteUp).Return(result, nil)
	store.On("PublishEvent", mock.Anything, "c1", mock.Anything).Return(errors.New("redis down"))

	got, err := ledger.Vote(context.Background(), "c1", "9001", models.VoteUp)

	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestLedger_Vote_RetriesOnceOnConflict(t *testing.T) {
	store := new(MockStore)
	ledger := voting.NewLedger(store, nil, nil, testDomain)

	student := &models.Student{ID: 7}
	result := &models.VoteResult{Action: models.VoteActionDeleted, VoteType: models.VoteUp}

	store.On("EnsureStudent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(student, nil)
	store.On("VoteOnComplaint", mock.Anything, "c1", uint(7), models.VoteUp).Return(nil, models.ErrVoteConflict).Once()
	store.On("VoteOnComplaint", mock.Anything, "c1", uint(7), models.VoteUp).Return(result, nil).Once()
	store.On("PublishEvent", mock.Anything, "c1", mock.Anything).Return(nil)

	got, err := ledger.Vote(context.Background(), "c1", "9001", models.VoteUp)

	require.NoError(t, err)
	assert.Equal(t, models.VoteActionDeleted, got.Action)
	store.AssertNumberOfCalls(t, "VoteOnComplaint", 2)
}

func TestLedger_Vote_NotifiesOnCriticalEscalation(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	ledger := voting.NewLedger(store, nil, notifier, testDomain)

	student := &models.Student{ID: 7}
	result := &models.VoteResult{
		Action:          models.VoteActionCreated,
		VoteType:        models.VoteUp,
		PriorityUpdated: true,
		OldPriority:     models.PriorityHigh,
		NewPriority:     models.PriorityCritical,
	}

	store.On("EnsureStudent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(student, nil)
	store.On("VoteOnComplaint", mock.Anything, "c1", uint(7), models.VoteUp).Return(result, nil)
	store.On("PublishEvent", mock.Anything, "c1", mock.Anything).Return(nil)
	notifier.On("PriorityEscalated", "c1", models.PriorityHigh, models.PriorityCritical).Return()

	_, err := ledger.Vote(context.Background(), "c1", "9001", models.VoteUp)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestLedger_Vote_NoNotificationBelowCritical(t *testing.T) {
	store := new(MockStore)
	notifier := new(MockNotifier)
	ledger := voting.NewLedger(store, nil, notifier, testDomain)

	student := &models.Student{ID: 7}
	result := &models.VoteResult{
		Action:          models.VoteActionCreated,
		VoteType:        models.VoteUp,
		PriorityUpdated: true,
		OldPriority:     models.PriorityMedium,
		NewPriority:     models.PriorityHigh,
	}

	store.On("EnsureStudent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(student, nil)
	store.On("VoteOnComplaint", mock.Anything, "c1", uint(7), models.VoteUp).Return(result, nil)
	store.On("PublishEvent", mock.Anything, "c1", mock.Anything).Return(nil)

	_, err := ledger.Vote(context.Background(), "c1", "9001", models.VoteUp)

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "PriorityEscalated", mock.Anything, mock.Anything, mock.Anything)
}

func TestLedger_UserVote(t *testing.T) {
	store := new(MockStore)
	ledger := voting.NewLedger(store, nil, nil, testDomain)

	student := &models.Student{ID: 7}
	vote := &models.Vote{ComplaintID: "c1", StudentID: 7, VoteType: models.VoteDown}

	store.On("EnsureStudent", mock.Anything, "9001", "Student", "9001@srec.ac.in", "Unknown").Return(student, nil)
	store.On("GetUserVote", mock.Anything, "c1", uint(7)).Return(vote, nil)

	got, err := ledger.UserVote(context.Background(), "c1", "9001")

	require.NoError(t, err)
	assert.Equal(t, models.VoteDown, got.VoteType)
}
