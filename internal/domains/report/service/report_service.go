package service

import (
	"context"
	"fmt"
	"time"

	"bookcatalog-backend/internal/domains/report"
)

type ReportService struct {
	repo report.Repository

	// now is swappable for tests; the inactive-author cutoff depends on
	// the current year.
	now func() time.Time
}

func NewService(repo report.Repository) report.Service {
	return &ReportService{repo: repo, now: time.Now}
}

func (s *ReportService) YearlyStats(ctx context.Context, minPublishedYear int) ([]report.YearlyStats, error) {
	results, err := s.repo.YearlyStats(ctx, minPublishedYear)
	if err != nil {
		return nil, fmt.Errorf("yearly stats: %w", err)
	}
	return results, nil
}

func (s *ReportService) AuthorBookValues(ctx context.Context) ([]report.AuthorValueReport, error) {
	results, err := s.repo.AuthorBookValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("author book values: %w", err)
	}
	return results, nil
}

func (s *ReportService) BooksByYear(ctx context.Context) ([]report.BookYearReport, error) {
	results, err := s.repo.BooksByYear(ctx)
	if err != nil {
		return nil, fmt.Errorf("books by year: %w", err)
	}
	return results, nil
}

func (s *ReportService) TopAuthorsByAvgPrice(ctx context.Context) ([]report.AuthorAvgPriceReport, error) {
	results, err := s.repo.TopAuthorsByAvgPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("top authors by avg price: %w", err)
	}
	return results, nil
}

func (s *ReportService) CountryRankings(ctx context.Context) ([]report.CountryRanking, error) {
	results, err := s.repo.CountryRankings(ctx)
	if err != nil {
		return nil, fmt.Errorf("country rankings: %w", err)
	}
	return results, nil
}

func (s *ReportService) InactiveAuthors(ctx context.Context, yearsThreshold int) ([]report.InactiveAuthor, error) {
	cutoffYear := s.now().Year() - yearsThreshold

	results, err := s.repo.InactiveAuthors(ctx, cutoffYear)
	if err != nil {
		return nil, fmt.Errorf("inactive authors: %w", err)
	}
	return results, nil
}

func (s *ReportService) AuthorRankings(ctx context.Context) ([]report.AuthorRanking, error) {
	results, err := s.repo.AuthorRankings(ctx)
	if err != nil {
		return nil, fmt.Errorf("author rankings: %w", err)
	}
	return results, nil
}
