package profile

import (
	"context"
)

// ProfileRepository defines data access for profiles and role assignments.
// A profile has at most one role; user_roles carries a UNIQUE(profile_id)
// constraint so ambiguous login resolution cannot happen.
type ProfileRepository interface {
	// Create inserts a profile row without a role assignment, filling in
	// the generated ID
	Create(ctx context.Context, p *Profile) error

	// AssignRole pairs a profile with its single role
	AssignRole(ctx context.Context, profileID string, role Role) error

	// CreateWithRole inserts the profile and its role assignment in one
	// transaction; either both rows land or neither does
	CreateWithRole(ctx context.Context, p *Profile, role Role) error

	// GetByID retrieves a profile with its role
	GetByID(ctx context.Context, id string) (*Profile, error)

	// GetByEmail retrieves a profile with its role by email
	GetByEmail(ctx context.Context, email string) (*Profile, error)

	// GetHODByBranch finds the HOD profile referencing the branch
	GetHODByBranch(ctx context.Context, branchID string) (*Profile, error)

	// ListByBranch retrieves profiles of a branch, optionally restricted to a role
	ListByBranch(ctx context.Context, branchID string, role *Role) ([]*Profile, error)

	// ListAll retrieves every profile with its role
	ListAll(ctx context.Context) ([]*Profile, error)

	// CountByBranchAndRole counts profiles in a branch holding the given role
	CountByBranchAndRole(ctx context.Context, branchID string, role Role) (int, error)

	// Delete removes a profile and its role assignment
	Delete(ctx context.Context, id string) error
}
