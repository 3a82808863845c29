package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/notification"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/report"
)

type reportService struct {
	reportRepo          report.ReportRepository
	lectureRepo         lecture.LectureRepository
	profileRepo         profile.ProfileRepository
	notificationService notification.Service
}

// NewReportService creates a new report service
func NewReportService(
	reportRepo report.ReportRepository,
	lectureRepo lecture.LectureRepository,
	profileRepo profile.ProfileRepository,
	notificationService notification.Service,
) report.ReportService {
	return &reportService{
		reportRepo:          reportRepo,
		lectureRepo:         lectureRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
	}
}

// SubmitReport records a report for one of the faculty's scheduled
// lectures. The report insert is authoritative; the lecture status update
// and the HOD notification are best effort and never fail the submission.
func (s *reportService) SubmitReport(ctx context.Context, req report.SubmitReportRequest) (report.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.ReportResponse{}, err
	}

	l, err := s.lectureRepo.GetByID(ctx, req.LectureID)
	if err != nil {
		return report.ReportResponse{}, err
	}

	if l.FacultyID != req.FacultyID || l.Status != lecture.StatusScheduled {
		return report.ReportResponse{}, report.ErrLectureNotReportable
	}

	// The status check alone would let a lecture be reported twice when
	// the best-effort status update after an earlier report failed
	count, err := s.reportRepo.CountByLecture(ctx, l.ID)
	if err != nil {
		return report.ReportResponse{}, err
	}
	if count > 0 {
		return report.ReportResponse{}, report.ErrLectureNotReportable
	}

	created, err := s.reportRepo.Create(ctx, report.LectureReport{
		LectureID:    l.ID,
		FacultyID:    req.FacultyID,
		Subject:      l.Subject,
		Date:         l.Date,
		TopicCovered: req.TopicCovered,
		Duration:     req.Duration,
		Status:       req.Status,
		Remarks:      req.Remarks,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return report.ReportResponse{}, err
	}

	if err := s.lectureRepo.UpdateStatus(ctx, l.ID, lecture.Status(req.Status)); err != nil {
		slog.Warn("failed to update lecture status after report", "lecture_id", l.ID, "error", err)
	}

	s.notifyHOD(ctx, created)

	created.FacultyName = l.FacultyName
	created.FacultyDepartment = l.FacultyDepartment

	return report.ToResponse(created), nil
}

// notifyHOD queues a submission notification to the faculty's branch HOD
func (s *reportService) notifyHOD(ctx context.Context, r report.LectureReport) {
	faculty, err := s.profileRepo.GetByID(ctx, r.FacultyID)
	if err != nil || faculty.BranchID == nil {
		return
	}

	hod, err := s.profileRepo.GetHODByBranch(ctx, *faculty.BranchID)
	if err != nil {
		return
	}

	err = s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: hod.ID,
		Type:        notification.TypeReportSubmitted,
		Title:       "Lecture Report Submitted",
		Message: fmt.Sprintf("%s submitted a report for %s (%s)",
			faculty.Name, r.Subject, r.Status),
	})
	if err != nil {
		slog.Warn("failed to queue report notification", "report_id", r.ID, "error", err)
	}
}

// ListReports retrieves reports scoped by faculty, branch or department
func (s *reportService) ListReports(ctx context.Context, filter report.ReportFilter) ([]report.ReportResponse, error) {
	reports, err := s.reportRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]report.ReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = report.ToResponse(r)
	}

	return responses, nil
}

// DepartmentStats aggregates report outcomes per department
func (s *reportService) DepartmentStats(ctx context.Context) ([]report.DepartmentStats, error) {
	reports, err := s.reportRepo.List(ctx, report.ReportFilter{})
	if err != nil {
		return nil, err
	}

	byDept := make(map[string]*report.DepartmentStats)
	order := []string{}

	for _, r := range reports {
		dept := ""
		if r.FacultyDepartment != nil {
			dept = *r.FacultyDepartment
		}

		stats, ok := byDept[dept]
		if !ok {
			stats = &report.DepartmentStats{Department: dept}
			byDept[dept] = stats
			order = append(order, dept)
		}

		stats.TotalLectures++
		switch lecture.Status(r.Status) {
		case lecture.StatusCompleted:
			stats.Completed++
		case lecture.StatusCancelled:
			stats.Cancelled++
		case lecture.StatusRescheduled:
			stats.Rescheduled++
		}
	}

	result := make([]report.DepartmentStats, len(order))
	for i, dept := range order {
		result[i] = *byDept[dept]
	}

	return result, nil
}
