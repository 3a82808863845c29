package profile

import (
	"context"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"golang.org/x/crypto/bcrypt"
)

type profileService struct {
	profileRepo profile.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo profile.ProfileRepository) profile.ProfileService {
	return &profileService{profileRepo: profileRepo}
}

// CreateFaculty creates a faculty profile inside the HOD's branch and
// assigns the faculty role. Branch and department come from the HOD's
// claims, never the request body.
func (s *profileService) CreateFaculty(ctx context.Context, req profile.CreateFacultyRequest) (profile.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return profile.ProfileResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	hash := string(passwordHash)
	p := &profile.Profile{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
		Department:   req.Department,
		BranchID:     &req.BranchID,
		Role:         profile.RoleFaculty,
		CreatedAt:    time.Now(),
	}

	// Profile and role land together or not at all
	if err := s.profileRepo.CreateWithRole(ctx, p, profile.RoleFaculty); err != nil {
		return profile.ProfileResponse{}, err
	}

	return profile.ToResponse(*p), nil
}

// GetProfile retrieves a single profile with its role
func (s *profileService) GetProfile(ctx context.Context, id string) (profile.ProfileResponse, error) {
	p, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return profile.ProfileResponse{}, err
	}

	return profile.ToResponse(*p), nil
}

// ListBranchFaculty retrieves the faculty roster of a branch
func (s *profileService) ListBranchFaculty(ctx context.Context, branchID string) ([]profile.ProfileResponse, error) {
	facultyRole := profile.RoleFaculty
	faculty, err := s.profileRepo.ListByBranch(ctx, branchID, &facultyRole)
	if err != nil {
		return nil, err
	}

	responses := make([]profile.ProfileResponse, len(faculty))
	for i, f := range faculty {
		responses[i] = profile.ToResponse(*f)
	}

	return responses, nil
}
