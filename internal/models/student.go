package models

import "time"

// Student represents a campus user identified by roll number.
// A minimal row is created on first contact (submission or vote),
// so both submitters and voters resolve to the same identity table.
type Student struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RollNumber string    `gorm:"size:20;uniqueIndex;not null" json:"roll_number"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;not null" json:"email"`
	Department string    `gorm:"size:50;not null" json:"department"`
	StayType   string    `gorm:"size:20" json:"stay_type"` // Hostel, Day Scholar
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
