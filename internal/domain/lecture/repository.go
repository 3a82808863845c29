package lecture

import (
	"context"
	"time"
)

type LectureRepository interface {
	// Create inserts a lecture. A unique index on
	// (date, time_slot, block, room) backs the double-booking invariant;
	// violations surface as ErrRoomConflict.
	Create(ctx context.Context, l Lecture) (Lecture, error)

	// GetByID retrieves a lecture with the assigned faculty joined in
	GetByID(ctx context.Context, id string) (Lecture, error)

	// Update overwrites the mutable fields (subject, date, time slot,
	// block, room, year, faculty)
	Update(ctx context.Context, l Lecture) (Lecture, error)

	// UpdateStatus sets only the status field
	UpdateStatus(ctx context.Context, id string, status Status) error

	// Delete removes a lecture; no cascading cleanup of reports or
	// notifications
	Delete(ctx context.Context, id string) error

	// ListByDateAndTime retrieves all lectures occupying a (date, time slot)
	// pair; block and room are not pre-filtered
	ListByDateAndTime(ctx context.Context, date time.Time, timeSlot string) ([]Lecture, error)

	// ListByDate retrieves lectures on a date, optionally for one faculty,
	// ordered by time slot
	ListByDate(ctx context.Context, date time.Time, facultyID *string) ([]Lecture, error)

	// ListScheduledByFaculty retrieves a faculty's lectures still in
	// scheduled status, ordered by date then time
	ListScheduledByFaculty(ctx context.Context, facultyID string) ([]Lecture, error)

	// ListByBranchAndRange retrieves lectures assigned to a branch's
	// faculty within a date range
	ListByBranchAndRange(ctx context.Context, branchID string, start, end time.Time) ([]Lecture, error)

	// CountByDateRange counts lectures within a date range, optionally for
	// one faculty
	CountByDateRange(ctx context.Context, start, end time.Time, facultyID *string) (int, error)
}
