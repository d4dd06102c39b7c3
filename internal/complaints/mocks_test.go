package complaints_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"campusvoice/backend/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) UpsertStudent(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStore) GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	args := m.Called(ctx, rollNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStore) CreateComplaint(ctx context.Context, complaint *models.Complaint, meta *models.SubmissionMeta) error {
	args := m.Called(ctx, complaint, meta)
	return args.Error(0)
}

func (m *MockStore) GetComplaint(ctx context.Context, complaintID string) (*models.Complaint, error) {
	args := m.Called(ctx, complaintID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStore) GetStudentComplaints(ctx context.Context, studentID uint, limit, offset int) ([]models.Complaint, error) {
	args := m.Called(ctx, studentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) GetPublicComplaints(ctx context.Context, limit, offset int, status, priority string) ([]models.Complaint, error) {
	args := m.Called(ctx, limit, offset, status, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) GetAuthorityComplaints(ctx context.Context, authorityType string) ([]models.Complaint, error) {
	args := m.Called(ctx, authorityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStore) UpdateComplaintPriority(ctx context.Context, complaintID, priority string, score int) error {
	args := m.Called(ctx, complaintID, priority, score)
	return args.Error(0)
}

func (m *MockStore) UpdateComplaintAnalysis(ctx context.Context, complaintID, payload string) error {
	args := m.Called(ctx, complaintID, payload)
	return args.Error(0)
}

func (m *MockStore) OverallStats(ctx context.Context) (*models.OverallStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OverallStats), args.Error(1)
}

// MockClassifier returns a fixed analysis.
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, title, description string) models.Analysis {
	args := m.Called(ctx, title, description)
	return args.Get(0).(models.Analysis)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ComplaintFiled(c *models.Complaint) {
	m.Called(c)
}
