package subject

import "context"

type SubjectRepository interface {
	// Create inserts a subject
	Create(ctx context.Context, s Subject) (Subject, error)

	// GetByID retrieves a subject
	GetByID(ctx context.Context, id string) (Subject, error)

	// ListByBranch retrieves subjects of a branch ordered by name,
	// optionally restricted to a year level
	ListByBranch(ctx context.Context, branchID string, year *int) ([]Subject, error)

	// Update overwrites name, code and year
	Update(ctx context.Context, s Subject) (Subject, error)

	// Delete removes a subject
	Delete(ctx context.Context, id string) error
}
