package book

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is the catalog book entity. ID and CreatedAt are database-assigned;
// UpdatedAt is stamped only when the price actually changes.
type Book struct {
	ID            int64
	Title         string
	ISBN          string
	PublishedYear *int
	Price         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// AuthorAssignment links a book under creation to an existing author,
// carrying the free-text contribution label for the association row.
type AuthorAssignment struct {
	AuthorID     int64   `json:"authorId"`
	Contribution *string `json:"contribution"`
}
