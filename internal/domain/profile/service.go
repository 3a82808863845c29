package profile

import "context"

// ProfileService defines business logic for the faculty roster
type ProfileService interface {
	// CreateFaculty creates a faculty profile inside the HOD's branch.
	// Profiles are always created by administrative action; there is no
	// self-registration.
	CreateFaculty(ctx context.Context, req CreateFacultyRequest) (ProfileResponse, error)

	// GetProfile retrieves a single profile with its role
	GetProfile(ctx context.Context, id string) (ProfileResponse, error)

	// ListBranchFaculty retrieves the faculty roster of a branch
	ListBranchFaculty(ctx context.Context, branchID string) ([]ProfileResponse, error)
}
