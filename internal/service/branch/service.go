package branch

import (
	"context"
	"errors"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/branch"
	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/campusdesk/campusdesk-backend-go/internal/pkg/saga"
	"golang.org/x/crypto/bcrypt"
)

type branchService struct {
	branchRepo  branch.BranchRepository
	profileRepo profile.ProfileRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo branch.BranchRepository, profileRepo profile.ProfileRepository) branch.BranchService {
	return &branchService{
		branchRepo:  branchRepo,
		profileRepo: profileRepo,
	}
}

// CreateBranch runs the branch-creation saga: insert the branch, create
// the HOD profile, assign the hod role. When a later step fails, the
// completed steps are compensated in reverse order so no orphaned branch
// or profile survives.
func (s *branchService) CreateBranch(ctx context.Context, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.HODPassword), bcrypt.DefaultCost)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	b := &branch.Branch{
		Name:      req.Name,
		Code:      req.Code,
		CreatedAt: time.Now(),
	}

	hash := string(passwordHash)
	hod := &profile.Profile{
		Name:         req.HODName,
		Email:        req.HODEmail,
		PasswordHash: &hash,
		Department:   req.Name,
		Role:         profile.RoleHOD,
		CreatedAt:    time.Now(),
	}

	err = saga.New("create_branch").
		AddStep(saga.Step{
			Name: "insert_branch",
			Run: func(ctx context.Context) error {
				return s.branchRepo.Create(ctx, b)
			},
			Compensate: func(ctx context.Context) error {
				return s.branchRepo.Delete(ctx, b.ID)
			},
		}).
		AddStep(saga.Step{
			Name: "create_hod_profile",
			Run: func(ctx context.Context) error {
				hod.BranchID = &b.ID
				return s.profileRepo.Create(ctx, hod)
			},
			Compensate: func(ctx context.Context) error {
				return s.profileRepo.Delete(ctx, hod.ID)
			},
		}).
		AddStep(saga.Step{
			Name: "assign_hod_role",
			Run: func(ctx context.Context) error {
				return s.profileRepo.AssignRole(ctx, hod.ID, profile.RoleHOD)
			},
		}).
		Execute(ctx)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return branch.ToResponse(*b), nil
}

// ListBranches retrieves all branches
func (s *branchService) ListBranches(ctx context.Context) ([]branch.BranchResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchResponse, len(branches))
	for i, b := range branches {
		responses[i] = branch.ToResponse(*b)
	}

	return responses, nil
}

// ListBranchesWithStaff retrieves all branches with their HOD and faculty count
func (s *branchService) ListBranchesWithStaff(ctx context.Context) ([]branch.BranchWithStaffResponse, error) {
	branches, err := s.branchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchWithStaffResponse, len(branches))
	for i, b := range branches {
		resp := branch.BranchWithStaffResponse{BranchResponse: branch.ToResponse(*b)}

		hod, err := s.profileRepo.GetHODByBranch(ctx, b.ID)
		if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		if hod != nil {
			resp.HOD = &branch.HODInfo{ID: hod.ID, Name: hod.Name, Email: hod.Email}
		}

		count, err := s.profileRepo.CountByBranchAndRole(ctx, b.ID, profile.RoleFaculty)
		if err != nil {
			return nil, err
		}
		resp.FacultyCount = count

		responses[i] = resp
	}

	return responses, nil
}

// GetBranchDetail retrieves a branch with its HOD and faculty roster
func (s *branchService) GetBranchDetail(ctx context.Context, id string) (branch.BranchDetailResponse, error) {
	b, err := s.branchRepo.GetByID(ctx, id)
	if err != nil {
		return branch.BranchDetailResponse{}, err
	}

	detail := branch.BranchDetailResponse{
		Branch:  branch.ToResponse(*b),
		Faculty: []profile.ProfileResponse{},
	}

	hod, err := s.profileRepo.GetHODByBranch(ctx, id)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		return branch.BranchDetailResponse{}, err
	}
	if hod != nil {
		resp := profile.ToResponse(*hod)
		detail.HOD = &resp
	}

	facultyRole := profile.RoleFaculty
	faculty, err := s.profileRepo.ListByBranch(ctx, id, &facultyRole)
	if err != nil {
		return branch.BranchDetailResponse{}, err
	}
	for _, f := range faculty {
		detail.Faculty = append(detail.Faculty, profile.ToResponse(*f))
	}

	return detail, nil
}

// UpdateBranch overwrites name and code
func (s *branchService) UpdateBranch(ctx context.Context, req branch.UpdateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	if err := s.branchRepo.Update(ctx, req.ID, req.Name, req.Code); err != nil {
		return branch.BranchResponse{}, err
	}

	b, err := s.branchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return branch.BranchResponse{}, err
	}

	return branch.ToResponse(*b), nil
}

// DeleteBranch removes a branch. The store rejects the delete while
// profiles still reference the branch.
func (s *branchService) DeleteBranch(ctx context.Context, id string) error {
	return s.branchRepo.Delete(ctx, id)
}
