package report

import "context"

type ReportFilter struct {
	FacultyID  *string
	BranchID   *string
	Department *string
}

type ReportRepository interface {
	// Create inserts a report row
	Create(ctx context.Context, r LectureReport) (LectureReport, error)

	// List retrieves reports with the submitting faculty joined in,
	// newest first
	List(ctx context.Context, filter ReportFilter) ([]LectureReport, error)

	// CountByLecture counts reports referencing a lecture
	CountByLecture(ctx context.Context, lectureID string) (int, error)
}
