package lecture

import "context"

// LectureService defines the timetable scheduling logic
type LectureService interface {
	// ScheduleLecture creates a lecture with status scheduled after a room
	// conflict pre-check, then notifies the assigned faculty (best effort)
	ScheduleLecture(ctx context.Context, req ScheduleLectureRequest) (LectureResponse, error)

	// UpdateLecture overwrites the mutable fields; the conflict check
	// excludes the lecture's own slot so an unchanged room never conflicts
	// with itself. No re-notification.
	UpdateLecture(ctx context.Context, req UpdateLectureRequest) (LectureResponse, error)

	// DeleteLecture removes a lecture unconditionally
	DeleteLecture(ctx context.Context, id string) error

	// SetStatus sets the lecture status. Any of the four statuses is
	// accepted; transitions are not guarded.
	SetStatus(ctx context.Context, req SetStatusRequest) error

	// CheckRoomConflict reports whether (date, timeSlot, block, room) is
	// already occupied. When any input is missing the check is skipped and
	// reported as not checkable rather than as available.
	CheckRoomConflict(ctx context.Context, date, timeSlot, block string, room int, excludeLectureID *string) (ConflictCheckResponse, error)

	// AvailableRooms enumerates the free rooms of a block for a
	// (date, timeSlot) pair, honoring the same self-exclusion rule
	AvailableRooms(ctx context.Context, q AvailabilityQuery) (AvailableRoomsResponse, error)

	// ListTodayLectures retrieves today's lectures, optionally for one faculty
	ListTodayLectures(ctx context.Context, facultyID *string) ([]LectureResponse, error)

	// ListScheduledByFaculty retrieves a faculty's pending lectures for the
	// report picker
	ListScheduledByFaculty(ctx context.Context, facultyID string) ([]LectureResponse, error)

	// ListByBranchAndRange retrieves a branch's lectures within a date range
	ListByBranchAndRange(ctx context.Context, branchID, startDate, endDate string) ([]LectureResponse, error)

	// WeeklyCount counts lectures in the current week, optionally for one
	// faculty
	WeeklyCount(ctx context.Context, facultyID *string) (WeeklyCountResponse, error)
}
