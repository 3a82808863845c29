package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/lecture"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type lectureRepository struct {
	db *database.DB
}

// NewLectureRepository creates a new lecture repository
func NewLectureRepository(db *database.DB) lecture.LectureRepository {
	return &lectureRepository{db: db}
}

const lectureColumns = `l.id, l.subject, l.date, l.time_slot, l.block, l.room, l.year, l.faculty_id, l.status, l.created_at, l.updated_at, p.name, p.department`

// Create inserts a lecture. The unique index on
// (date, time_slot, block, room) is the authority on double bookings.
func (r *lectureRepository) Create(ctx context.Context, l lecture.Lecture) (lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO lectures (id, subject, date, time_slot, block, room, year, faculty_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := q.Exec(ctx, query,
		l.ID,
		l.Subject,
		l.Date,
		l.TimeSlot,
		l.Block,
		l.Room,
		l.Year,
		l.FacultyID,
		string(l.Status),
		l.CreatedAt,
		l.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "lectures_slot_key") {
			return lecture.Lecture{}, lecture.ErrRoomConflict
		}
		return lecture.Lecture{}, fmt.Errorf("failed to create lecture: %w", err)
	}

	return l, nil
}

// GetByID retrieves a lecture with the assigned faculty joined in
func (r *lectureRepository) GetByID(ctx context.Context, id string) (lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM lectures l
		JOIN profiles p ON p.id = l.faculty_id
		WHERE l.id = $1
	`, lectureColumns)

	l, err := scanLectureRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return lecture.Lecture{}, lecture.ErrLectureNotFound
		}
		return lecture.Lecture{}, fmt.Errorf("failed to get lecture: %w", err)
	}

	return l, nil
}

// Update overwrites the mutable fields of a lecture
func (r *lectureRepository) Update(ctx context.Context, l lecture.Lecture) (lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE lectures
		SET subject = $2, date = $3, time_slot = $4, block = $5, room = $6, year = $7, faculty_id = $8, updated_at = $9
		WHERE id = $1
	`

	l.UpdatedAt = time.Now()
	result, err := q.Exec(ctx, query,
		l.ID,
		l.Subject,
		l.Date,
		l.TimeSlot,
		l.Block,
		l.Room,
		l.Year,
		l.FacultyID,
		l.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "lectures_slot_key") {
			return lecture.Lecture{}, lecture.ErrRoomConflict
		}
		return lecture.Lecture{}, fmt.Errorf("failed to update lecture: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lecture.Lecture{}, lecture.ErrLectureNotFound
	}

	return r.GetByID(ctx, l.ID)
}

// UpdateStatus sets only the status field
func (r *lectureRepository) UpdateStatus(ctx context.Context, id string, status lecture.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE lectures SET status = $2, updated_at = $3 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, string(status), time.Now())
	if err != nil {
		return fmt.Errorf("failed to update lecture status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lecture.ErrLectureNotFound
	}

	return nil
}

// Delete removes a lecture
func (r *lectureRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM lectures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lecture: %w", err)
	}

	if result.RowsAffected() == 0 {
		return lecture.ErrLectureNotFound
	}

	return nil
}

// ListByDateAndTime retrieves all lectures on a (date, time slot) pair
func (r *lectureRepository) ListByDateAndTime(ctx context.Context, date time.Time, timeSlot string) ([]lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM lectures l
		JOIN profiles p ON p.id = l.faculty_id
		WHERE l.date = $1 AND l.time_slot = $2
		ORDER BY l.block, l.room
	`, lectureColumns)

	rows, err := q.Query(ctx, query, date, timeSlot)
	if err != nil {
		return nil, fmt.Errorf("failed to query lectures by slot: %w", err)
	}
	defer rows.Close()

	return scanLectureRows(rows)
}

// ListByDate retrieves lectures on a date, optionally for one faculty
func (r *lectureRepository) ListByDate(ctx context.Context, date time.Time, facultyID *string) ([]lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM lectures l
		JOIN profiles p ON p.id = l.faculty_id
		WHERE l.date = $1
	`, lectureColumns)
	args := []interface{}{date}

	if facultyID != nil {
		query += " AND l.faculty_id = $2"
		args = append(args, *facultyID)
	}

	query += " ORDER BY l.time_slot"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lectures by date: %w", err)
	}
	defer rows.Close()

	return scanLectureRows(rows)
}

// ListScheduledByFaculty retrieves a faculty's lectures still in scheduled status
func (r *lectureRepository) ListScheduledByFaculty(ctx context.Context, facultyID string) ([]lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM lectures l
		JOIN profiles p ON p.id = l.faculty_id
		WHERE l.faculty_id = $1 AND l.status = 'scheduled'
		ORDER BY l.date, l.time_slot
	`, lectureColumns)

	rows, err := q.Query(ctx, query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled lectures: %w", err)
	}
	defer rows.Close()

	return scanLectureRows(rows)
}

// ListByBranchAndRange retrieves lectures taught by a branch's faculty in a date range
func (r *lectureRepository) ListByBranchAndRange(ctx context.Context, branchID string, start, end time.Time) ([]lecture.Lecture, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM lectures l
		JOIN profiles p ON p.id = l.faculty_id
		WHERE p.branch_id = $1 AND l.date BETWEEN $2 AND $3
		ORDER BY l.date, l.time_slot
	`, lectureColumns)

	rows, err := q.Query(ctx, query, branchID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch lectures: %w", err)
	}
	defer rows.Close()

	return scanLectureRows(rows)
}

// CountByDateRange counts lectures in a date range, optionally for one faculty
func (r *lectureRepository) CountByDateRange(ctx context.Context, start, end time.Time, facultyID *string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM lectures WHERE date BETWEEN $1 AND $2`
	args := []interface{}{start, end}

	if facultyID != nil {
		query += " AND faculty_id = $3"
		args = append(args, *facultyID)
	}

	var count int
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count lectures: %w", err)
	}

	return count, nil
}

func scanLectureRow(row pgx.Row) (lecture.Lecture, error) {
	var l lecture.Lecture
	var status string

	err := row.Scan(
		&l.ID,
		&l.Subject,
		&l.Date,
		&l.TimeSlot,
		&l.Block,
		&l.Room,
		&l.Year,
		&l.FacultyID,
		&status,
		&l.CreatedAt,
		&l.UpdatedAt,
		&l.FacultyName,
		&l.FacultyDepartment,
	)
	if err != nil {
		return lecture.Lecture{}, err
	}

	l.Status = lecture.Status(status)
	return l, nil
}

func scanLectureRows(rows pgx.Rows) ([]lecture.Lecture, error) {
	var lectures []lecture.Lecture
	for rows.Next() {
		var l lecture.Lecture
		var status string

		if err := rows.Scan(
			&l.ID,
			&l.Subject,
			&l.Date,
			&l.TimeSlot,
			&l.Block,
			&l.Room,
			&l.Year,
			&l.FacultyID,
			&status,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.FacultyName,
			&l.FacultyDepartment,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lecture: %w", err)
		}

		l.Status = lecture.Status(status)
		lectures = append(lectures, l)
	}

	return lectures, nil
}
