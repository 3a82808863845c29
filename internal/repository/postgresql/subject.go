package postgresql

import (
	"context"
	"fmt"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/subject"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type subjectRepository struct {
	db *database.DB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *database.DB) subject.SubjectRepository {
	return &subjectRepository{db: db}
}

// Create inserts a subject. Codes are unique per branch.
func (r *subjectRepository) Create(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO subjects (id, name, code, year, branch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := q.Exec(ctx, query, s.ID, s.Name, s.Code, s.Year, s.BranchID, s.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "subjects_branch_id_code_key") {
			return subject.Subject{}, subject.ErrSubjectCodeExists
		}
		return subject.Subject{}, fmt.Errorf("failed to create subject: %w", err)
	}

	return s, nil
}

// GetByID retrieves a subject by ID
func (r *subjectRepository) GetByID(ctx context.Context, id string) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, year, branch_id, created_at
		FROM subjects
		WHERE id = $1
	`

	var s subject.Subject
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Code, &s.Year, &s.BranchID, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return subject.Subject{}, subject.ErrSubjectNotFound
		}
		return subject.Subject{}, fmt.Errorf("failed to get subject: %w", err)
	}

	return s, nil
}

// ListByBranch retrieves a branch's subjects, optionally for one year level
func (r *subjectRepository) ListByBranch(ctx context.Context, branchID string, year *int) ([]subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, year, branch_id, created_at
		FROM subjects
		WHERE branch_id = $1
	`
	args := []interface{}{branchID}

	if year != nil {
		query += " AND year = $2"
		args = append(args, *year)
	}

	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query subjects: %w", err)
	}
	defer rows.Close()

	var subjects []subject.Subject
	for rows.Next() {
		var s subject.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.Year, &s.BranchID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, s)
	}

	return subjects, nil
}

// Update overwrites name, code and year
func (r *subjectRepository) Update(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subjects
		SET name = $2, code = $3, year = $4
		WHERE id = $1
		RETURNING branch_id, created_at
	`

	err := q.QueryRow(ctx, query, s.ID, s.Name, s.Code, s.Year).Scan(&s.BranchID, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return subject.Subject{}, subject.ErrSubjectNotFound
		}
		if database.IsUniqueViolation(err, "subjects_branch_id_code_key") {
			return subject.Subject{}, subject.ErrSubjectCodeExists
		}
		return subject.Subject{}, fmt.Errorf("failed to update subject: %w", err)
	}

	return s, nil
}

// Delete removes a subject
func (r *subjectRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}

	if result.RowsAffected() == 0 {
		return subject.ErrSubjectNotFound
	}

	return nil
}
