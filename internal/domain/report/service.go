package report

import "context"

// ReportService defines the report submission workflow
type ReportService interface {
	// SubmitReport records a report for one of the faculty's scheduled
	// lectures, flips the lecture's status to the reported outcome, then
	// notifies the branch HOD. The insert is authoritative; the status
	// update and the notification are best effort.
	SubmitReport(ctx context.Context, req SubmitReportRequest) (ReportResponse, error)

	// ListReports retrieves reports scoped by faculty, branch or department
	ListReports(ctx context.Context, filter ReportFilter) ([]ReportResponse, error)

	// DepartmentStats aggregates report outcomes per department
	DepartmentStats(ctx context.Context) ([]DepartmentStats, error)
}
