// Package complaints implements complaint intake and the read surface over
// stored complaints. Intake classifies the complaint, routes it to an
// authority and scores its initial priority before the record is persisted.
package complaints

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"campusvoice/backend/internal/classify"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/priority"
)

// Store is the slice of the storage layer the complaint service needs.
type Store interface {
	UpsertStudent(ctx context.Context, student *models.Student) error
	GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error)
	CreateComplaint(ctx context.Context, complaint *models.Complaint, meta *models.SubmissionMeta) error
	GetComplaint(ctx context.Context, complaintID string) (*models.Complaint, error)
	GetStudentComplaints(ctx context.Context, studentID uint, limit, offset int) ([]models.Complaint, error)
	GetPublicComplaints(ctx context.Context, limit, offset int, status, priority string) ([]models.Complaint, error)
	GetAuthorityComplaints(ctx context.Context, authorityType string) ([]models.Complaint, error)
	UpdateComplaintPriority(ctx context.Context, complaintID, priority string, score int) error
	UpdateComplaintAnalysis(ctx context.Context, complaintID, payload string) error
	OverallStats(ctx context.Context) (*models.OverallStats, error)
}

// Notifier receives new-complaint alerts. Safe to call with a nil receiver.
type Notifier interface {
	ComplaintFiled(c *models.Complaint)
}

// Submission is a complaint as received from a student.
type Submission struct {
	RollNumber  string
	Name        string
	Email       string
	Department  string
	StayType    string
	Title       string
	Description string
	Visibility  string
	ImageURL    string
	UserAgent   string
	IPAddress   string
}

type Service struct {
	store       Store
	classifier  classify.Classifier
	notifier    Notifier
	timeout     time.Duration
	emailDomain string
}

func NewService(store Store, classifier classify.Classifier, notifier Notifier, timeout time.Duration, emailDomain string) *Service {
	return &Service{
		store:       store,
		classifier:  classifier,
		notifier:    notifier,
		timeout:     timeout,
		emailDomain: emailDomain,
	}
}

// Submit files a new complaint. Classification runs under a bounded timeout
// and degrades to the manual-review record, so intake succeeds even when the
// categorizer is down.
func (s *Service) Submit(ctx context.Context, sub Submission) (*models.Complaint, error) {
	email := sub.Email
	if email == "" {
		email = sub.RollNumber + "@" + s.emailDomain
	}
	student := &models.Student{
		RollNumber: sub.RollNumber,
		Name:       sub.Name,
		Email:      email,
		Department: sub.Department,
		StayType:   sub.StayType,
	}
	if err := s.store.UpsertStudent(ctx, student); err != nil {
		return nil, err
	}

	classifyCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	analysis := s.classifier.Classify(classifyCtx, sub.Title, sub.Description)

	authority := classify.AuthorityFor(analysis.Category)
	score, label := priority.Recalculate(analysis, 0, 0)

	payload, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}

	visibility := sub.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	complaint := &models.Complaint{
		StudentID:         student.ID,
		Title:             sub.Title,
		Description:       sub.Description,
		Visibility:        visibility,
		ImageURL:          sub.ImageURL,
		Status:            models.StatusRaised,
		Priority:          label,
		PriorityScore:     score,
		Analysis:          string(payload),
		Category:          analysis.Category,
		KeyIssues:         analysis.KeyIssues,
		AssignedAuthority: authority.Name,
		AuthorityEmail:    authority.Email,
	}
	meta := &models.SubmissionMeta{
		UserAgent: sub.UserAgent,
		IPAddress: sub.IPAddress,
	}
	if err := s.store.CreateComplaint(ctx, complaint, meta); err != nil {
		return nil, err
	}
	complaint.Student = *student

	if s.notifier != nil && complaint.Priority == models.PriorityCritical {
		s.notifier.ComplaintFiled(complaint)
	}
	return complaint, nil
}

// MyComplaints lists everything a student has filed, private included.
func (s *Service) MyComplaints(ctx context.Context, rollNumber string, limit, offset int) ([]models.Complaint, error) {
	student, err := s.store.GetStudentByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.GetStudentComplaints(ctx, student.ID, limit, offset)
}

// PublicFeed lists public complaints, most upvoted first.
func (s *Service) PublicFeed(ctx context.Context, limit, offset int, status, priorityFilter string) ([]models.Complaint, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.GetPublicComplaints(ctx, limit, offset, status, priorityFilter)
}

func (s *Service) Detail(ctx context.Context, complaintID string) (*models.Complaint, error) {
	return s.store.GetComplaint(ctx, complaintID)
}

// AuthorityComplaints lists the complaints routed to one authority category.
func (s *Service) AuthorityComplaints(ctx context.Context, authorityType string) ([]models.Complaint, classify.Authority, error) {
	authority := classify.AuthorityFor(authorityType)
	if !classify.KnownCategory(authorityType) {
		authorityType = "other"
	}
	list, err := s.store.GetAuthorityComplaints(ctx, authorityType)
	return list, authority, err
}

// RecalculatePriority rescores a complaint from its stored classification and
// current vote counters. A complaint with no usable stored classification is
// re-classified first.
func (s *Service) RecalculatePriority(ctx context.Context, complaintID string) (*models.Complaint, error) {
	complaint, err := s.store.GetComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	analysis, ok := complaint.ParseAnalysis()
	if !ok {
		classifyCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()
		analysis = s.classifier.Classify(classifyCtx, complaint.Title, complaint.Description)

		if payload, err := json.Marshal(analysis); err == nil {
			complaint.Analysis = string(payload)
			if err := s.store.UpdateComplaintAnalysis(ctx, complaintID, complaint.Analysis); err != nil {
				log.Printf("complaints: store analysis for %s: %v", complaintID, err)
			}
		}
	}

	score, label := priority.Recalculate(analysis, complaint.Upvotes, complaint.Downvotes)
	if err := s.store.UpdateComplaintPriority(ctx, complaintID, label, score); err != nil {
		return nil, err
	}
	log.Printf("complaints: recalculated %s priority %s -> %s (score %d)", complaintID, complaint.Priority, label, score)
	complaint.Priority = label
	complaint.PriorityScore = score
	return complaint, nil
}

// Stats returns the system-wide dashboard counters.
func (s *Service) Stats(ctx context.Context) (*models.OverallStats, error) {
	return s.store.OverallStats(ctx)
}
