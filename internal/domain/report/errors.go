package report

import "errors"

var (
	ErrReportNotFound = errors.New("lecture report not found")

	// ErrLectureNotReportable is returned when the referenced lecture is
	// not in scheduled status or does not belong to the submitting faculty.
	ErrLectureNotReportable = errors.New("lecture is not available for reporting")
)
