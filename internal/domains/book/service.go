package book

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service is the book business logic contract.
type Service interface {
	Create(ctx context.Context, req CreateBookRequest) (*BookResponse, error)

	// GetByID returns (nil, nil) when the book does not exist.
	GetByID(ctx context.Context, id int64) (*BookResponse, error)

	Search(ctx context.Context, filter SearchFilter) (*PageResult, error)

	// UpdatePrice returns the id of the updated book.
	UpdatePrice(ctx context.Context, id int64, newPrice decimal.Decimal) (int64, error)

	// UpdatePriceByAuthor returns the count of books whose price was adjusted.
	UpdatePriceByAuthor(ctx context.Context, req UpdatePriceByAuthorRequest) (int64, error)
}
