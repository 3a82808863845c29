package subject

import (
	"context"
	"fmt"
	"testing"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/subject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubjectRepo struct {
	seq      int
	subjects map[string]subject.Subject
}

func newFakeSubjectRepo() *fakeSubjectRepo {
	return &fakeSubjectRepo{subjects: make(map[string]subject.Subject)}
}

func (f *fakeSubjectRepo) Create(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	for _, existing := range f.subjects {
		if existing.BranchID == s.BranchID && existing.Code == s.Code {
			return subject.Subject{}, subject.ErrSubjectCodeExists
		}
	}
	f.seq++
	s.ID = fmt.Sprintf("sub-%d", f.seq)
	f.subjects[s.ID] = s
	return s, nil
}

func (f *fakeSubjectRepo) GetByID(ctx context.Context, id string) (subject.Subject, error) {
	s, ok := f.subjects[id]
	if !ok {
		return subject.Subject{}, subject.ErrSubjectNotFound
	}
	return s, nil
}

func (f *fakeSubjectRepo) ListByBranch(ctx context.Context, branchID string, year *int) ([]subject.Subject, error) {
	var out []subject.Subject
	for _, s := range f.subjects {
		if s.BranchID != branchID {
			continue
		}
		if year != nil && s.Year != *year {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSubjectRepo) Update(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	existing, ok := f.subjects[s.ID]
	if !ok {
		return subject.Subject{}, subject.ErrSubjectNotFound
	}
	existing.Name = s.Name
	existing.Code = s.Code
	existing.Year = s.Year
	f.subjects[s.ID] = existing
	return existing, nil
}

func (f *fakeSubjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.subjects[id]; !ok {
		return subject.ErrSubjectNotFound
	}
	delete(f.subjects, id)
	return nil
}

func createRequest(code string, year int) subject.CreateSubjectRequest {
	return subject.CreateSubjectRequest{
		Name:     "Data Structures",
		Code:     code,
		Year:     year,
		BranchID: "b1",
	}
}

func TestCreateSubject(t *testing.T) {
	svc := NewSubjectService(newFakeSubjectRepo())

	resp, err := svc.CreateSubject(context.Background(), createRequest("CS201", 2))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "CS201", resp.Code)
	assert.Equal(t, 2, resp.Year)
}

func TestCreateSubjectDuplicateCode(t *testing.T) {
	svc := NewSubjectService(newFakeSubjectRepo())

	_, err := svc.CreateSubject(context.Background(), createRequest("CS201", 2))
	require.NoError(t, err)

	_, err = svc.CreateSubject(context.Background(), createRequest("CS201", 3))
	assert.ErrorIs(t, err, subject.ErrSubjectCodeExists)
}

func TestListSubjectsByYear(t *testing.T) {
	svc := NewSubjectService(newFakeSubjectRepo())

	_, err := svc.CreateSubject(context.Background(), createRequest("CS201", 2))
	require.NoError(t, err)
	_, err = svc.CreateSubject(context.Background(), createRequest("CS202", 2))
	require.NoError(t, err)
	_, err = svc.CreateSubject(context.Background(), createRequest("CS401", 4))
	require.NoError(t, err)

	grouped, err := svc.ListSubjectsByYear(context.Background(), "b1")
	require.NoError(t, err)

	// Every year key is present even when empty
	require.Len(t, grouped, len(subject.Years))
	assert.Len(t, grouped[1], 0)
	assert.Len(t, grouped[2], 2)
	assert.Len(t, grouped[3], 0)
	assert.Len(t, grouped[4], 1)
	assert.NotNil(t, grouped[1])
	assert.NotNil(t, grouped[3])
}

func TestUpdateSubject(t *testing.T) {
	svc := NewSubjectService(newFakeSubjectRepo())

	created, err := svc.CreateSubject(context.Background(), createRequest("CS201", 2))
	require.NoError(t, err)

	updated, err := svc.UpdateSubject(context.Background(), subject.UpdateSubjectRequest{
		ID:   created.ID,
		Name: "Advanced Data Structures",
		Code: "CS301",
		Year: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Advanced Data Structures", updated.Name)
	assert.Equal(t, "CS301", updated.Code)
	assert.Equal(t, 3, updated.Year)
}

func TestDeleteSubject(t *testing.T) {
	svc := NewSubjectService(newFakeSubjectRepo())

	created, err := svc.CreateSubject(context.Background(), createRequest("CS201", 2))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSubject(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteSubject(context.Background(), created.ID), subject.ErrSubjectNotFound)
}
