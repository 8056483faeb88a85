package report

import "context"

// Repository is the read-only reporting contract. Every method tolerates
// zero matching rows by returning an empty slice.
type Repository interface {
	YearlyStats(ctx context.Context, minPublishedYear int) ([]YearlyStats, error)
	AuthorBookValues(ctx context.Context) ([]AuthorValueReport, error)
	BooksByYear(ctx context.Context) ([]BookYearReport, error)
	TopAuthorsByAvgPrice(ctx context.Context) ([]AuthorAvgPriceReport, error)
	CountryRankings(ctx context.Context) ([]CountryRanking, error)

	// InactiveAuthors returns authors with zero books plus authors all of
	// whose books were published strictly before cutoffYear, ordered by name.
	InactiveAuthors(ctx context.Context, cutoffYear int) ([]InactiveAuthor, error)

	AuthorRankings(ctx context.Context) ([]AuthorRanking, error)
}
