package attendance

import "context"

// AttendanceService defines daily attendance tracking and aggregation
type AttendanceService interface {
	// Mark upserts the caller's attendance row for the date (defaults to
	// today). Idempotent per day; repeating with a different status
	// overwrites it.
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)

	// Today retrieves the caller's row for today; nil data when unmarked
	Today(ctx context.Context, profileID string) (*AttendanceResponse, error)

	// History retrieves the caller's last 30 rows, newest first
	History(ctx context.Context, profileID string) ([]AttendanceResponse, error)

	// ByBranch partitions the branch's faculty roster for a date into
	// present, leave and notMarked
	ByBranch(ctx context.Context, branchID string, date string) (BranchAttendanceResponse, error)

	// AllBranches computes the same partition for every branch over all of
	// its profiles, HOD included
	AllBranches(ctx context.Context, date string) (AllBranchesResponse, error)
}
