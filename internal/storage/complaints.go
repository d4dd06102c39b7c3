package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campusvoice/backend/internal/models"
)

// CreateComplaint persists the complaint and its submission metadata in one
// transaction.
func (s *Service) CreateComplaint(ctx context.Context, complaint *models.Complaint, meta *models.SubmissionMeta) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(complaint).Error; err != nil {
			return err
		}
		if meta != nil {
			meta.ComplaintID = complaint.ID
			if meta.SubmittedAt.IsZero() {
				meta.SubmittedAt = complaint.SubmittedAt
			}
			if err := tx.Create(meta).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) GetComplaint(ctx context.Context, complaintID string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Where("id = ?", complaintID).
		First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrComplaintNotFound
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// GetStudentComplaints returns the student's complaints, newest first,
// regardless of visibility.
func (s *Service) GetStudentComplaints(ctx context.Context, studentID uint, limit, offset int) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&complaints).Error
	return complaints, err
}

// GetPublicComplaints returns the public feed, most upvoted first. status and
// priority are optional filters; empty means no filter.
func (s *Service) GetPublicComplaints(ctx context.Context, limit, offset int, status, priority string) ([]models.Complaint, error) {
	q := s.DB.WithContext(ctx).
		Preload("Student").
		Where("visibility = ?", models.VisibilityPublic)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}

	var complaints []models.Complaint
	err := q.Order("upvotes DESC, submitted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&complaints).Error
	return complaints, err
}

// GetAuthorityComplaints returns the complaints routed to one authority's
// category, unresolved first, then by priority score.
func (s *Service) GetAuthorityComplaints(ctx context.Context, authorityType string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.WithContext(ctx).
		Preload("Student").
		Where("category = ?", authorityType).
		Order("status = 'closed', priority_score DESC, submitted_at ASC").
		Find(&complaints).Error
	return complaints, err
}

func (s *Service) UpdateComplaintPriority(ctx context.Context, complaintID, priority string, score int) error {
	res := s.DB.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Updates(map[string]interface{}{
			"priority":       priority,
			"priority_score": score,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrComplaintNotFound
	}
	return nil
}

// UpdateComplaintAnalysis replaces the stored classification payload.
func (s *Service) UpdateComplaintAnalysis(ctx context.Context, complaintID, payload string) error {
	res := s.DB.WithContext(ctx).
		Model(&models.Complaint{}).
		Where("id = ?", complaintID).
		Update("analysis", payload)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrComplaintNotFound
	}
	return nil
}

// OverallStats aggregates the dashboard counters in one round trip per table.
func (s *Service) OverallStats(ctx context.Context) (*models.OverallStats, error) {
	stats := models.OverallStats{
		ByStatus:   make(map[string]int64),
		ByPriority: make(map[string]int64),
	}

	db := s.DB.WithContext(ctx)
	if err := db.Model(&models.Student{}).Count(&stats.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Complaint{}).Count(&stats.TotalComplaints).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Vote{}).Count(&stats.TotalVotes).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key   string
		Count int64
	}
	var byStatus []bucket
	err := db.Model(&models.Complaint{}).
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, b := range byStatus {
		stats.ByStatus[b.Key] = b.Count
	}

	var byPriority []bucket
	err = db.Model(&models.Complaint{}).
		Select("priority AS key, COUNT(*) AS count").
		Group("priority").
		Scan(&byPriority).Error
	if err != nil {
		return nil, err
	}
	for _, b := range byPriority {
		stats.ByPriority[b.Key] = b.Count
	}
	return &stats, nil
}
