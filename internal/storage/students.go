package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campusvoice/backend/internal/models"
)

// UpsertStudent creates the student or refreshes their profile fields when
// the roll number already exists. Used on complaint submission, where the
// caller supplies real profile data.
func (s *Service) UpsertStudent(ctx context.Context, student *models.Student) error {
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "roll_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email", "department", "stay_type", "updated_at"}),
	}).Create(student).Error
	if err != nil {
		return err
	}
	// Re-read so the caller sees the canonical row, including the ID of a
	// pre-existing student.
	return s.DB.WithContext(ctx).
		Where("roll_number = ?", student.RollNumber).
		First(student).Error
}

// EnsureStudent creates a minimal student row if the roll number is unknown
// and returns the stored row either way. Existing profile fields are never
// overwritten; vote and status paths use this with placeholder data.
func (s *Service) EnsureStudent(ctx context.Context, rollNumber, name, email, department string) (*models.Student, error) {
	student := models.Student{
		RollNumber: rollNumber,
		Name:       name,
		Email:      email,
		Department: department,
	}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "roll_number"}},
		DoNothing: true,
	}).Create(&student).Error
	if err != nil {
		return nil, err
	}

	var stored models.Student
	err = s.DB.WithContext(ctx).
		Where("roll_number = ?", rollNumber).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (s *Service) GetStudentByRollNumber(ctx context.Context, rollNumber string) (*models.Student, error) {
	var student models.Student
	err := s.DB.WithContext(ctx).
		Where("roll_number = ?", rollNumber).
		First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}
