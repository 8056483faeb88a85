package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/report"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) report.Repository {
	return &postgresRepository{pool: pool}
}

// query executes a goqu dataset and folds every row through scan.
func query(ctx context.Context, pool *pgxpool.Pool, ds *goqu.SelectDataset, scan func(pgx.Rows) error) error {
	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return fmt.Errorf("build report query: %w", err)
	}

	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan report row: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("report rows: %w", err)
	}

	return nil
}

func (r *postgresRepository) YearlyStats(ctx context.Context, minPublishedYear int) ([]report.YearlyStats, error) {
	results := []report.YearlyStats{}
	err := query(ctx, r.pool, yearlyStatsQuery(minPublishedYear), func(rows pgx.Rows) error {
		var row report.YearlyStats
		if err := rows.Scan(&row.Year, &row.TotalBooks, &row.AvgPrice); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}

func (r *postgresRepository) AuthorBookValues(ctx context.Context) ([]report.AuthorValueReport, error) {
	results := []report.AuthorValueReport{}
	err := query(ctx, r.pool, authorBookValuesQuery(), func(rows pgx.Rows) error {
		var row report.AuthorValueReport
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalBooks, &row.TotalValue); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}

func (r *postgresRepository) BooksByYear(ctx context.Context) ([]report.BookYearReport, error) {
	results := []report.BookYearReport{}
	err := query(ctx, r.pool, booksByYearQuery(), func(rows pgx.Rows) error {
		var row report.BookYearReport
		if err := rows.Scan(&row.PublishedYear, &row.TotalBooks, &row.TotalValue); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}

func (r *postgresRepository) TopAuthorsByAvgPrice(ctx context.Context) ([]report.AuthorAvgPriceReport, error) {
	results := []report.AuthorAvgPriceReport{}
	err := query(ctx, r.pool, topAuthorsByAvgPriceQuery(), func(rows pgx.Rows) error {
		var row report.AuthorAvgPriceReport
		if err := rows.Scan(&row.ID, &row.Name, &row.TotalBooks, &row.AvgPrice); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}

func (r *postgresRepository) CountryRankings(ctx context.Context) ([]report.CountryRanking, error) {
	results := []report.CountryRanking{}
	err := query(ctx, r.pool, countryRankingsQuery(), func(rows pgx.Rows) error {
		var row report.CountryRanking
		if err := rows.Scan(&row.Country, &row.TotalValue, &row.Rank); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}

func (r *postgresRepository) InactiveAuthors(ctx context.Context, cutoffYear int) ([]report.InactiveAuthor, error) {
	results := []report.InactiveAuthor{}
	err := query(ctx, r.pool, inactiveAuthorsQuery(cutoffYear), func(rows pgx.Rows) error {
		var row report.InactiveAuthor
		if err := rows.Scan(&row.ID, &row.Name, &row.Country, &row.LastPublishedYear, &row.Reason); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}

func (r *postgresRepository) AuthorRankings(ctx context.Context) ([]report.AuthorRanking, error) {
	results := []report.AuthorRanking{}
	err := query(ctx, r.pool, authorRankingsQuery(), func(rows pgx.Rows) error {
		var row report.AuthorRanking
		if err := rows.Scan(&row.ID, &row.Name, &row.Country, &row.TotalValue, &row.Rank); err != nil {
			return err
		}
		results = append(results, row)
		return nil
	})
	return results, err
}
