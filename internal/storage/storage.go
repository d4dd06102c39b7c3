// Package storage is the persistence layer: PostgreSQL through GORM for all
// records, Redis pub/sub as the bridge to the realtime feed. All counter and
// status mutations run inside row-locked transactions here, so the service
// layers above never see a torn read.
package storage

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"campusvoice/backend/internal/models"
)

// EventsChannel is the Redis channel carrying realtime events from the API
// process to every process holding WebSocket subscribers.
const EventsChannel = "complaints:events"

type Storage interface {
	UpsertStudent(ctx context.Context, student *models.Student) error
	EnsureStudent(ctx context.Context, rollNumber, name, email, department string) (*models.Student, error)
	GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)

	CreateComplaint(ctx context.Context, complaint *models.Complaint, meta *models.SubmissionMeta) error
	GetComplaint(ctx context.Context, complaintID string) (*models.Complaint, error)
	GetStudentComplaints(ctx context.Context, studentID uint, limit, offset int) ([]models.Complaint, error)
	GetPublicComplaints(ctx context.Context, limit, offset int, status, priority string) ([]models.Complaint, error)
	GetAuthorityComplaints(ctx context.Context, authorityType string) ([]models.Complaint, error)
	UpdateComplaintPriority(ctx context.Context, complaintID, priority string, score int) error
	UpdateComplaintAnalysis(ctx context.Context, complaintID, payload string) error

	VoteOnComplaint(ctx context.Context, complaintID string, studentID uint, voteType string) (*models.VoteResult, error)
	GetUserVote(ctx context.Context, complaintID string, studentID uint) (*models.Vote, error)
	GetVoteStats(ctx context.Context, complaintID string) (*models.VoteStats, error)

	UpdateComplaintStatus(ctx context.Context, complaintID, newStatus string, updatedBy uint, reason string) (*models.StatusResult, error)

	OverallStats(ctx context.Context) (*models.OverallStats, error)

	PublishEvent(ctx context.Context, complaintID string, ev models.Event) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{DB: db, Redis: rdb}
}

// PublishEvent pushes a realtime event onto the shared Redis channel. The
// complaint ID travels inside the event; subscribers route by it.
func (s *Service) PublishEvent(ctx context.Context, complaintID string, ev models.Event) error {
	ev.ComplaintID = complaintID
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return s.Redis.Publish(ctx, EventsChannel, payload).Err()
}
