package postgresql

import (
	"context"
	"fmt"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/report"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type reportRepository struct {
	db *database.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts a report row
func (repo *reportRepository) Create(ctx context.Context, r report.LectureReport) (report.LectureReport, error) {
	q := GetQuerier(ctx, repo.db)

	if r.ID == "" {
		r.ID = uuid.New().String()
	}

	query := `
		INSERT INTO lecture_reports (id, lecture_id, faculty_id, subject, date, topic_covered, duration, status, remarks, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := q.Exec(ctx, query,
		r.ID,
		r.LectureID,
		r.FacultyID,
		r.Subject,
		r.Date,
		r.TopicCovered,
		r.Duration,
		r.Status,
		r.Remarks,
		r.CreatedAt,
	)
	if err != nil {
		return report.LectureReport{}, fmt.Errorf("failed to create report: %w", err)
	}

	return r, nil
}

// List retrieves reports with the submitting faculty joined in, newest first
func (repo *reportRepository) List(ctx context.Context, filter report.ReportFilter) ([]report.LectureReport, error) {
	q := GetQuerier(ctx, repo.db)

	query := `
		SELECT r.id, r.lecture_id, r.faculty_id, r.subject, r.date, r.topic_covered, r.duration, r.status, r.remarks, r.created_at,
		       p.name, p.department, p.branch_id
		FROM lecture_reports r
		JOIN profiles p ON p.id = r.faculty_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIndex := 1

	if filter.FacultyID != nil {
		query += fmt.Sprintf(" AND r.faculty_id = $%d", argIndex)
		args = append(args, *filter.FacultyID)
		argIndex++
	}
	if filter.BranchID != nil {
		query += fmt.Sprintf(" AND p.branch_id = $%d", argIndex)
		args = append(args, *filter.BranchID)
		argIndex++
	}
	if filter.Department != nil {
		query += fmt.Sprintf(" AND p.department = $%d", argIndex)
		args = append(args, *filter.Department)
		argIndex++
	}

	query += " ORDER BY r.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	var reports []report.LectureReport
	for rows.Next() {
		var r report.LectureReport
		if err := rows.Scan(
			&r.ID,
			&r.LectureID,
			&r.FacultyID,
			&r.Subject,
			&r.Date,
			&r.TopicCovered,
			&r.Duration,
			&r.Status,
			&r.Remarks,
			&r.CreatedAt,
			&r.FacultyName,
			&r.FacultyDepartment,
			&r.FacultyBranchID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, r)
	}

	return reports, nil
}

// CountByLecture counts reports referencing a lecture
func (repo *reportRepository) CountByLecture(ctx context.Context, lectureID string) (int, error) {
	q := GetQuerier(ctx, repo.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM lecture_reports WHERE lecture_id = $1`, lectureID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}

	return count, nil
}
