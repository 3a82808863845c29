package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts the row for (profile, date) or, when it already
	// exists, updates only the status field
	Upsert(ctx context.Context, a Attendance) (Attendance, error)

	// GetByProfileAndDate retrieves a profile's row for a date; returns
	// nil when none exists
	GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) (*Attendance, error)

	// ListByProfile retrieves a profile's most recent rows, newest first
	ListByProfile(ctx context.Context, profileID string, limit int) ([]Attendance, error)

	// ListByBranchAndDate retrieves a branch's rows for a date with the
	// profile joined in
	ListByBranchAndDate(ctx context.Context, branchID string, date time.Time) ([]Attendance, error)

	// ListByDate retrieves all rows for a date
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
}
