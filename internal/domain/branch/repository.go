package branch

import "context"

type BranchRepository interface {
	// Create inserts a branch, filling in the generated ID
	Create(ctx context.Context, b *Branch) error

	// GetByID retrieves a branch
	GetByID(ctx context.Context, id string) (*Branch, error)

	// List retrieves all branches ordered by name
	List(ctx context.Context) ([]*Branch, error)

	// Update overwrites name and code
	Update(ctx context.Context, id, name, code string) error

	// Delete removes a branch. The store's foreign key restriction rejects
	// deletion while profiles still reference the branch; there is no
	// application-level pre-check.
	Delete(ctx context.Context, id string) error
}
