package postgresql

import (
	"context"
	"fmt"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type profileRepository struct {
	db *database.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `p.id, p.name, p.email, p.password_hash, p.department, p.branch_id, ur.role, p.created_at`

// Create inserts a profile row. The role is assigned separately so the
// branch creation saga can compensate each step on its own.
func (r *profileRepository) Create(ctx context.Context, p *profile.Profile) error {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO profiles (id, name, email, password_hash, department, branch_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.PasswordHash,
		p.Department,
		p.BranchID,
		p.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err, "profiles_email_key") {
			return profile.ErrEmailExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

// AssignRole records the profile's role. The unique index on profile_id
// keeps one role per account.
func (r *profileRepository) AssignRole(ctx context.Context, profileID string, role profile.Role) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_roles (id, profile_id, role)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, uuid.New().String(), profileID, string(role))
	if err != nil {
		if database.IsUniqueViolation(err, "user_roles_profile_id_key") {
			return profile.ErrRoleAlreadyAssigned
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// CreateWithRole inserts the profile and its role assignment inside a
// single transaction. Used where no saga coordinates the two steps.
func (r *profileRepository) CreateWithRole(ctx context.Context, p *profile.Profile, role profile.Role) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := r.Create(txCtx, p); err != nil {
			return err
		}
		return r.AssignRole(txCtx, p.ID, role)
	})
}

// GetByID retrieves a profile with its role by ID
func (r *profileRepository) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN user_roles ur ON ur.profile_id = p.id
		WHERE p.id = $1
	`, profileColumns)

	p, err := scanProfileRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// GetByEmail retrieves a profile with its role by email
func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN user_roles ur ON ur.profile_id = p.id
		WHERE p.email = $1
	`, profileColumns)

	p, err := scanProfileRow(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return p, nil
}

// GetHODByBranch retrieves the HOD profile assigned to a branch
func (r *profileRepository) GetHODByBranch(ctx context.Context, branchID string) (*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN user_roles ur ON ur.profile_id = p.id
		WHERE p.branch_id = $1 AND ur.role = 'hod'
	`, profileColumns)

	p, err := scanProfileRow(q.QueryRow(ctx, query, branchID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get branch HOD: %w", err)
	}

	return p, nil
}

// ListByBranch retrieves all profiles in a branch, optionally filtered by role
func (r *profileRepository) ListByBranch(ctx context.Context, branchID string, role *profile.Role) ([]*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN user_roles ur ON ur.profile_id = p.id
		WHERE p.branch_id = $1
	`, profileColumns)
	args := []interface{}{branchID}

	if role != nil {
		query += " AND ur.role = $2"
		args = append(args, string(*role))
	}

	query += " ORDER BY p.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query branch profiles: %w", err)
	}
	defer rows.Close()

	return scanProfileRows(rows)
}

// ListAll retrieves every profile with its role
func (r *profileRepository) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles p
		JOIN user_roles ur ON ur.profile_id = p.id
		ORDER BY p.name
	`, profileColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	return scanProfileRows(rows)
}

// CountByBranchAndRole counts profiles in a branch holding a role
func (r *profileRepository) CountByBranchAndRole(ctx context.Context, branchID string, role profile.Role) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM profiles p
		JOIN user_roles ur ON ur.profile_id = p.id
		WHERE p.branch_id = $1 AND ur.role = $2
	`

	var count int
	if err := q.QueryRow(ctx, query, branchID, string(role)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count branch profiles: %w", err)
	}

	return count, nil
}

// Delete removes a profile. The role row goes with it via ON DELETE CASCADE.
func (r *profileRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return profile.ErrProfileNotFound
	}

	return nil
}

func scanProfileRow(row pgx.Row) (*profile.Profile, error) {
	var p profile.Profile
	var role string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.PasswordHash,
		&p.Department,
		&p.BranchID,
		&role,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Role = profile.Role(role)
	return &p, nil
}

func scanProfileRows(rows pgx.Rows) ([]*profile.Profile, error) {
	var profiles []*profile.Profile
	for rows.Next() {
		var p profile.Profile
		var role string

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Email,
			&p.PasswordHash,
			&p.Department,
			&p.BranchID,
			&role,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}

		p.Role = profile.Role(role)
		profiles = append(profiles, &p)
	}

	return profiles, nil
}
