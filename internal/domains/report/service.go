package report

import "context"

// Service is the reporting business logic contract.
type Service interface {
	YearlyStats(ctx context.Context, minPublishedYear int) ([]YearlyStats, error)
	AuthorBookValues(ctx context.Context) ([]AuthorValueReport, error)
	BooksByYear(ctx context.Context) ([]BookYearReport, error)
	TopAuthorsByAvgPrice(ctx context.Context) ([]AuthorAvgPriceReport, error)
	CountryRankings(ctx context.Context) ([]CountryRanking, error)
	InactiveAuthors(ctx context.Context, yearsThreshold int) ([]InactiveAuthor, error)
	AuthorRankings(ctx context.Context) ([]AuthorRanking, error)
}
