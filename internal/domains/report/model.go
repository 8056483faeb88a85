package report

import (
	"github.com/shopspring/decimal"
)

// Sentinel values for the inactive-author report.
const (
	ReasonNoBook   = "NO_BOOK"
	ReasonOldBooks = "OLD_BOOKS"

	// NoBookSentinelYear marks authors with no books at all; deliberately
	// out of range of any real publication year.
	NoBookSentinelYear = -9999
)

// YearlyStats is one row of the yearly statistics report.
type YearlyStats struct {
	Year       int             `json:"year"`
	TotalBooks int             `json:"totalBooks"`
	AvgPrice   decimal.Decimal `json:"avgPrice"`
}

// AuthorValueReport aggregates distinct book count and summed price per author.
type AuthorValueReport struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	TotalBooks int             `json:"totalBooks"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// BookYearReport aggregates count and summed price per publication year.
type BookYearReport struct {
	PublishedYear *int            `json:"publishedYear"`
	TotalBooks    int             `json:"totalBooks"`
	TotalValue    decimal.Decimal `json:"totalValue"`
}

// AuthorAvgPriceReport is one row of the top-authors-by-average-price report.
type AuthorAvgPriceReport struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	TotalBooks int             `json:"totalBooks"`
	AvgPrice   decimal.Decimal `json:"avgPrice"`
}

// CountryRanking ranks countries by total book value using standard SQL
// RANK semantics: ties share a rank, the next distinct value skips ahead.
type CountryRanking struct {
	Country    *string         `json:"country"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Rank       int             `json:"rank"`
}

// InactiveAuthor is one row of the inactive-author report: either an author
// with no books at all, or one whose newest book predates the cutoff year.
type InactiveAuthor struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Country           *string `json:"country"`
	LastPublishedYear int     `json:"lastPublishedYear"`
	Reason            string  `json:"reason"`
}

// AuthorRanking ranks authors by total book value, RANK semantics as above.
type AuthorRanking struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Country    *string         `json:"country"`
	TotalValue decimal.Decimal `json:"totalValue"`
	Rank       int             `json:"rank"`
}
