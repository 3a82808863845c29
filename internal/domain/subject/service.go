package subject

import "context"

type SubjectService interface {
	// CreateSubject adds a subject to the HOD's branch catalog
	CreateSubject(ctx context.Context, req CreateSubjectRequest) (SubjectResponse, error)

	// ListSubjects retrieves a branch's subjects, optionally by year
	ListSubjects(ctx context.Context, branchID string, year *int) ([]SubjectResponse, error)

	// ListSubjectsByYear groups a branch's subjects by year level; every
	// year key is present even when empty
	ListSubjectsByYear(ctx context.Context, branchID string) (map[int][]SubjectResponse, error)

	// UpdateSubject overwrites name, code and year
	UpdateSubject(ctx context.Context, req UpdateSubjectRequest) (SubjectResponse, error)

	// DeleteSubject removes a subject from the catalog
	DeleteSubject(ctx context.Context, id string) error
}
