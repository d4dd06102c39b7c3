package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/status"
)

// UpdateComplaintStatus applies one status transition and writes its audit
// row in the same row-locked transaction. A transition to the current status
// is still recorded.
func (s *Service) UpdateComplaintStatus(ctx context.Context, complaintID, newStatus string, updatedBy uint, reason string) (*models.StatusResult, error) {
	var result models.StatusResult
	err := withRetry(ctx, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var complaint models.Complaint
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", complaintID).
				First(&complaint).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrComplaintNotFound
			}
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			audit := status.Apply(&complaint, newStatus, updatedBy, reason, now)

			updates := map[string]interface{}{
				"status":     complaint.Status,
				"updated_at": complaint.UpdatedAt,
			}
			if complaint.ResolvedAt != nil {
				updates["resolved_at"] = *complaint.ResolvedAt
			}
			err = tx.Model(&models.Complaint{}).
				Where("id = ?", complaintID).
				Updates(updates).Error
			if err != nil {
				return err
			}

			if err := tx.Create(&audit).Error; err != nil {
				return err
			}

			result = models.StatusResult{
				OldStatus: audit.OldStatus,
				NewStatus: audit.NewStatus,
				UpdatedAt: now,
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
