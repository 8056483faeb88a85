package book

import (
	"context"

	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/author"
)

// Repository is the book data access contract. Every mutation runs inside a
// single transaction: either all of its writes commit, or none do.
type Repository interface {
	// Create inserts the book and one association row per assignment in a
	// single transaction. An existing row with the same title is locked and
	// reported as ErrTitleAlreadyExists before the insert is attempted.
	Create(ctx context.Context, b *Book, assignments []AuthorAssignment) error

	// GetByID returns the book row, or (nil, nil) when no such book exists.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// AuthorsForBooks fetches all (book, author) pairs for the given book ids
	// in one round trip, grouped by book id.
	AuthorsForBooks(ctx context.Context, bookIDs []int64) (map[int64][]author.AuthorResponse, error)

	// Search returns one page of books matching the filter plus the exact
	// total count of matching books.
	Search(ctx context.Context, filter SearchFilter) ([]Book, int64, error)

	// UpdatePrice locks the book row, then changes the price (stamping
	// updated_at) only when the new value differs from the stored one.
	// Returns ErrBookNotFound when the id is unknown.
	UpdatePrice(ctx context.Context, id int64, newPrice decimal.Decimal) error

	// UpdatePriceByAuthor multiplies the price of every book associated with
	// a qualifying author in one set-based statement and returns the number
	// of rows updated.
	UpdatePriceByAuthor(ctx context.Context, authorName, authorCountry string, multiplier decimal.Decimal) (int64, error)
}
