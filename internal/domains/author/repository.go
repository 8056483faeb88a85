package author

import "context"

// Repository is the author data access contract.
type Repository interface {
	// Create inserts the author and fills in the database-assigned
	// ID and CreatedAt.
	Create(ctx context.Context, a *Author) error

	// TopByRevenue sums associated book prices per author, descending,
	// limited to the given number of rows.
	TopByRevenue(ctx context.Context, limit int) ([]AuthorRevenue, error)
}
