package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeProfileRepo struct {
	seq         int
	profiles    map[string]*profile.Profile
	roles       map[string]profile.Role
	roleFailure error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[string]*profile.Profile),
		roles:    make(map[string]profile.Role),
	}
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	for _, existing := range f.profiles {
		if existing.Email == p.Email {
			return profile.ErrEmailExists
		}
	}
	f.seq++
	if p.ID == "" {
		p.ID = fmt.Sprintf("profile-%d", f.seq)
	}
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) AssignRole(ctx context.Context, profileID string, role profile.Role) error {
	if f.roleFailure != nil {
		return f.roleFailure
	}
	f.roles[profileID] = role
	return nil
}

// CreateWithRole mirrors the transactional repository: nothing persists
// when either step fails.
func (f *fakeProfileRepo) CreateWithRole(ctx context.Context, p *profile.Profile, role profile.Role) error {
	if err := f.Create(ctx, p); err != nil {
		return err
	}
	if err := f.AssignRole(ctx, p.ID, role); err != nil {
		delete(f.profiles, p.ID)
		return err
	}
	return nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id string) (*profile.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*profile.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetHODByBranch(ctx context.Context, branchID string) (*profile.Profile, error) {
	return nil, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) ListByBranch(ctx context.Context, branchID string, role *profile.Role) ([]*profile.Profile, error) {
	var out []*profile.Profile
	for _, p := range f.profiles {
		if p.BranchID == nil || *p.BranchID != branchID {
			continue
		}
		if role != nil && p.Role != *role {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) ListAll(ctx context.Context) ([]*profile.Profile, error) {
	var out []*profile.Profile
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) CountByBranchAndRole(ctx context.Context, branchID string, role profile.Role) (int, error) {
	count := 0
	for _, p := range f.profiles {
		if p.BranchID != nil && *p.BranchID == branchID && p.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, id string) error {
	delete(f.profiles, id)
	return nil
}

func facultyRequest() profile.CreateFacultyRequest {
	return profile.CreateFacultyRequest{
		Name:       "Asha Verma",
		Email:      "asha@campus.edu",
		Password:   "supersecret",
		BranchID:   "b1",
		Department: "Computer Science",
	}
}

func TestCreateFaculty(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	resp, err := svc.CreateFaculty(context.Background(), facultyRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, profile.RoleFaculty, repo.roles[resp.ID])

	stored := repo.profiles[resp.ID]
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("supersecret")))
	require.NotNil(t, stored.BranchID)
	assert.Equal(t, "b1", *stored.BranchID)
}

func TestCreateFacultyDuplicateEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	_, err := svc.CreateFaculty(context.Background(), facultyRequest())
	require.NoError(t, err)

	_, err = svc.CreateFaculty(context.Background(), facultyRequest())
	assert.ErrorIs(t, err, profile.ErrEmailExists)
	assert.Len(t, repo.profiles, 1)
}

func TestCreateFacultyRoleFailureLeavesNothing(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.roleFailure = errors.New("role insert failed")
	svc := NewProfileService(repo)

	_, err := svc.CreateFaculty(context.Background(), facultyRequest())
	require.Error(t, err)

	// The account and the role land together or not at all
	assert.Empty(t, repo.profiles)
	assert.Empty(t, repo.roles)
}

func TestCreateFacultyValidation(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo())

	req := facultyRequest()
	req.Password = "short"
	_, err := svc.CreateFaculty(context.Background(), req)
	assert.Error(t, err)
}

func TestListBranchFaculty(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	_, err := svc.CreateFaculty(context.Background(), facultyRequest())
	require.NoError(t, err)

	other := facultyRequest()
	other.Email = "ravi@campus.edu"
	other.BranchID = "b2"
	_, err = svc.CreateFaculty(context.Background(), other)
	require.NoError(t, err)

	roster, err := svc.ListBranchFaculty(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "asha@campus.edu", roster[0].Email)
}

func TestGetProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	created, err := svc.CreateFaculty(context.Background(), facultyRequest())
	require.NoError(t, err)

	got, err := svc.GetProfile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@campus.edu", got.Email)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}
