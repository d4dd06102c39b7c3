package voting_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campusvoice/backend/internal/models"
)

// MockStore is a testify mock of the slice of storage the ledger uses.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) EnsureStudent(ctx context.Context, rollNumber, name, email, department string) (*models.Student, error) {
	args := m.Called(ctx, rollNumber, name, email, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStore) VoteOnComplaint(ctx context.Context, complaintID string, studentID uint, voteType string) (*models.VoteResult, error) {
	args := m.Called(ctx, complaintID, studentID, voteType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteResult), args.Error(1)
}

func (m *MockStore) GetUserVote(ctx context.Context, complaintID string, studentID uint) (*models.Vote, error) {
	args := m.Called(ctx, complaintID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vote), args.Error(1)
}

func (m *MockStore) GetVoteStats(ctx context.Context, complaintID string) (*models.VoteStats, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VoteStats), args.Error(1)
}

func (m *MockStore) PublishEvent(ctx context.Context, complaintID string, ev models.Event) error {
	args := m.Called(ctx, complaintID, ev)
	return args.Error(0)
}

// MockNotifier records priority escalations.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) PriorityEscalated(complaintID, oldPriority, newPriority string) {
	m.Called(complaintID, oldPriority, newPriority)
}
