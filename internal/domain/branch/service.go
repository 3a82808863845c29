package branch

import "context"

// BranchService defines registrar-level branch administration
type BranchService interface {
	// CreateBranch runs the branch-creation saga: insert branch, create the
	// HOD profile, assign the hod role; each completed step is compensated
	// in reverse order when a later one fails.
	CreateBranch(ctx context.Context, req CreateBranchRequest) (BranchResponse, error)

	// ListBranches retrieves all branches
	ListBranches(ctx context.Context) ([]BranchResponse, error)

	// ListBranchesWithStaff retrieves all branches with HOD and faculty count
	ListBranchesWithStaff(ctx context.Context) ([]BranchWithStaffResponse, error)

	// GetBranchDetail retrieves a branch with its HOD and faculty roster
	GetBranchDetail(ctx context.Context, id string) (BranchDetailResponse, error)

	// UpdateBranch overwrites name and code
	UpdateBranch(ctx context.Context, req UpdateBranchRequest) (BranchResponse, error)

	// DeleteBranch removes a branch; rejected by the store while profiles
	// still reference it
	DeleteBranch(ctx context.Context, id string) error
}
