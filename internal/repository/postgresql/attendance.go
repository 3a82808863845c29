package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/attendance"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.profile_id, a.role, a.branch_id, a.date, a.status, a.created_at, p.name, p.email, p.department`

// Upsert inserts the row for (profile, date) or updates only the status
// when it already exists. The unique index on (profile_id, date) makes
// the two-step check-then-write race free.
func (r *attendanceRepository) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance (id, profile_id, role, branch_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (profile_id, date)
		DO UPDATE SET status = EXCLUDED.status
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.ProfileID,
		a.Role,
		a.BranchID,
		a.Date,
		string(a.Status),
		a.CreatedAt,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return a, nil
}

// GetByProfileAndDate retrieves a profile's row for a date; nil when absent
func (r *attendanceRepository) GetByProfileAndDate(ctx context.Context, profileID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, profile_id, role, branch_id, date, status, created_at
		FROM attendance
		WHERE profile_id = $1 AND date = $2
	`

	var a attendance.Attendance
	var status string
	err := q.QueryRow(ctx, query, profileID, date).Scan(
		&a.ID,
		&a.ProfileID,
		&a.Role,
		&a.BranchID,
		&a.Date,
		&status,
		&a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	a.Status = attendance.Status(status)
	return &a, nil
}

// ListByProfile retrieves a profile's most recent rows, newest first
func (r *attendanceRepository) ListByProfile(ctx context.Context, profileID string, limit int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, profile_id, role, branch_id, date, status, created_at
		FROM attendance
		WHERE profile_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var status string
		if err := rows.Scan(
			&a.ID,
			&a.ProfileID,
			&a.Role,
			&a.BranchID,
			&a.Date,
			&status,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.Status = attendance.Status(status)
		records = append(records, a)
	}

	return records, nil
}

// ListByBranchAndDate retrieves a branch's rows for a date with the profile joined in
func (r *attendanceRepository) ListByBranchAndDate(ctx context.Context, branchID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		JOIN profiles p ON p.id = a.profile_id
		WHERE a.branch_id = $1 AND a.date = $2
		ORDER BY p.name
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, branchID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch attendance: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

// ListByDate retrieves all rows for a date
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendance a
		JOIN profiles p ON p.id = a.profile_id
		WHERE a.date = $1
		ORDER BY p.name
	`, attendanceColumns)

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by date: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		var status string
		if err := rows.Scan(
			&a.ID,
			&a.ProfileID,
			&a.Role,
			&a.BranchID,
			&a.Date,
			&status,
			&a.CreatedAt,
			&a.ProfileName,
			&a.ProfileEmail,
			&a.ProfileDepartment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.Status = attendance.Status(status)
		records = append(records, a)
	}

	return records, nil
}
