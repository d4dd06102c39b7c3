package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/priority"
	"campusvoice/backend/internal/voting"
)

// VoteOnComplaint applies one vote request atomically. The complaint row is
// locked for the whole transaction, so concurrent votes on the same complaint
// serialize and the counters stay exact. The priority recompute runs inside
// the same transaction; the label is only written when it changes.
func (s *Service) VoteOnComplaint(ctx context.Context, complaintID string, studentID uint, voteType string) (*models.VoteResult, error) {
	var result *models.VoteResult
	err := withRetry(ctx, func() error {
		var txErr error
		result, txErr = s.voteTx(ctx, complaintID, studentID, voteType)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) voteTx(ctx context.Context, complaintID string, studentID uint, voteType string) (*models.VoteResult, error) {
	var result models.VoteResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
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

		var existing models.Vote
		var existingPtr *models.Vote
		err = tx.Where("complaint_id = ? AND student_id = ?", complaintID, studentID).
			First(&existing).Error
		switch {
		case err == nil:
			existingPtr = &existing
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return err
		}

		action := voting.ApplyTransition(&complaint, existingPtr, voteType)

		switch action {
		case models.VoteActionCreated:
			vote := models.Vote{
				ComplaintID: complaintID,
				StudentID:   studentID,
				VoteType:    voteType,
			}
			if err := tx.Create(&vote).Error; err != nil {
				if isUniqueViolation(err) {
					return models.ErrVoteConflict
				}
				return err
			}
		case models.VoteActionDeleted:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		case models.VoteActionUpdated:
			err := tx.Model(&existing).Update("vote_type", voteType).Error
			if err != nil {
				return err
			}
		}

		updates := map[string]interface{}{
			"upvotes":   complaint.Upvotes,
			"downvotes": complaint.Downvotes,
		}
		result = models.VoteResult{
			Action:    action,
			VoteType:  voteType,
			Upvotes:   complaint.Upvotes,
			Downvotes: complaint.Downvotes,
		}

		if analysis, ok := complaint.ParseAnalysis(); ok {
			score, label := priority.Recalculate(analysis, complaint.Upvotes, complaint.Downvotes)
			if label != complaint.Priority {
				updates["priority"] = label
				updates["priority_score"] = score
				result.PriorityUpdated = true
				result.OldPriority = complaint.Priority
				result.NewPriority = label
			}
		}

		return tx.Model(&models.Complaint{}).
			Where("id = ?", complaintID).
			Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Service) GetUserVote(ctx context.Context, complaintID string, studentID uint) (*models.Vote, error) {
	var vote models.Vote
	err := s.DB.WithContext(ctx).
		Where("complaint_id = ? AND student_id = ?", complaintID, studentID).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// GetVoteStats reads the authoritative counters off the complaint row rather
// than counting vote rows, so readers and the vote transaction agree.
func (s *Service) GetVoteStats(ctx context.Context, complaintID string) (*models.VoteStats, error) {
	complaint, err := s.GetComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	return &models.VoteStats{
		Upvotes:   complaint.Upvotes,
		Downvotes: complaint.Downvotes,
		Total:     complaint.Upvotes + complaint.Downvotes,
		NetVotes:  complaint.Upvotes - complaint.Downvotes,
	}, nil
}
