package postgresql

import (
	"context"
	"fmt"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/branch"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type branchRepository struct {
	db *database.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepository{db: db}
}

// Create inserts a branch. The unique index on code rejects duplicates.
func (r *branchRepository) Create(ctx context.Context, b *branch.Branch) error {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	query := `
		INSERT INTO branches (id, name, code, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, b.ID, b.Name, b.Code, b.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "branches_code_key") {
			return branch.ErrBranchCodeExists
		}
		return fmt.Errorf("failed to create branch: %w", err)
	}

	return nil
}

// GetByID retrieves a branch by ID
func (r *branchRepository) GetByID(ctx context.Context, id string) (*branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, code, created_at FROM branches WHERE id = $1`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Code, &b.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, branch.ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	return &b, nil
}

// List retrieves all branches ordered by name
func (r *branchRepository) List(ctx context.Context) ([]*branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, code, created_at FROM branches ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query branches: %w", err)
	}
	defer rows.Close()

	var branches []*branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, &b)
	}

	return branches, nil
}

// Update changes a branch's name and code
func (r *branchRepository) Update(ctx context.Context, id, name, code string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE branches SET name = $2, code = $3 WHERE id = $1`

	result, err := q.Exec(ctx, query, id, name, code)
	if err != nil {
		if database.IsUniqueViolation(err, "branches_code_key") {
			return branch.ErrBranchCodeExists
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}

	if result.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}

// Delete removes a branch. Profiles reference branches with ON DELETE
// RESTRICT, so a branch with members comes back as ErrBranchHasMembers.
func (r *branchRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return branch.ErrBranchHasMembers
		}
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	if result.RowsAffected() == 0 {
		return branch.ErrBranchNotFound
	}

	return nil
}
