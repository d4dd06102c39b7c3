package models

import "errors"

// Domain errors shared across the service layers. Handlers map these to
// HTTP status codes; everything else surfaces as a generic failure.
var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrInvalidVoteType   = errors.New("invalid vote type")
	ErrInvalidStatus     = errors.New("invalid status")

	// ErrVoteConflict is the unique-constraint violation on (complaint_id,
	// student_id). It means two requests from the same voter raced; the
	// ledger retries once before surfacing it.
	ErrVoteConflict = errors.New("duplicate vote")
)
