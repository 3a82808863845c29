package report

import (
	"strings"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/validator"
)

type SubmitReportRequest struct {
	LectureID    string  `json:"lecture_id"`
	TopicCovered string  `json:"topic_covered"`
	Duration     int     `json:"duration"`
	Status       string  `json:"status"`
	Remarks      *string `json:"remarks"`

	// Filled from the authenticated faculty's claims
	FacultyID string `json:"-"`
}

func (r *SubmitReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LectureID) {
		errs = append(errs, validator.ValidationError{
			Field:   "lecture_id",
			Message: "lecture_id is required",
		})
	}
	if validator.IsEmpty(r.TopicCovered) {
		errs = append(errs, validator.ValidationError{
			Field:   "topic_covered",
			Message: "topic_covered is required",
		})
	}
	if !validator.IsInIntSlice(r.Duration, Durations) {
		durations := make([]string, len(Durations))
		for i, d := range Durations {
			durations[i] = validator.Itoa(d)
		}
		errs = append(errs, validator.ValidationError{
			Field:   "duration",
			Message: "duration must be one of: " + strings.Join(durations, ", "),
		})
	}
	if !validator.IsInSlice(r.Status, lecture.StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(lecture.StatusValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	ID                string    `json:"id"`
	LectureID         string    `json:"lecture_id"`
	FacultyID         string    `json:"faculty_id"`
	FacultyName       *string   `json:"faculty_name,omitempty"`
	FacultyDepartment *string   `json:"faculty_department,omitempty"`
	Subject           string    `json:"subject"`
	Date              string    `json:"date"`
	TopicCovered      string    `json:"topic_covered"`
	Duration          int       `json:"duration"`
	Status            string    `json:"status"`
	Remarks           *string   `json:"remarks,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// DepartmentStats aggregates report outcomes per department.
type DepartmentStats struct {
	Department    string `json:"department"`
	TotalLectures int    `json:"total_lectures"`
	Completed     int    `json:"completed"`
	Cancelled     int    `json:"cancelled"`
	Rescheduled   int    `json:"rescheduled"`
}

func ToResponse(r LectureReport) ReportResponse {
	return ReportResponse{
		ID:                r.ID,
		LectureID:         r.LectureID,
		FacultyID:         r.FacultyID,
		FacultyName:       r.FacultyName,
		FacultyDepartment: r.FacultyDepartment,
		Subject:           r.Subject,
		Date:              r.Date.Format("2006-01-02"),
		TopicCovered:      r.TopicCovered,
		Duration:          r.Duration,
		Status:            r.Status,
		Remarks:           r.Remarks,
		CreatedAt:         r.CreatedAt,
	}
}
