package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/author"
)

var dialect = goqu.Dialect("postgres")

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) error {
	sql, args, err := dialect.Insert("author").
		Rows(goqu.Record{
			"name":       a.Name,
			"email":      a.Email,
			"birth_date": a.BirthDate,
			"country":    a.Country,
		}).
		Returning("id", "created_at").
		Prepared(true).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert author query: %w", err)
	}

	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return fmt.Errorf("insert author: %w", err)
	}

	return nil
}

func (r *postgresRepository) TopByRevenue(ctx context.Context, limit int) ([]author.AuthorRevenue, error) {
	totalRevenue := goqu.SUM(goqu.I("book.price"))

	sql, args, err := dialect.From("author").
		Join(goqu.T("book_author"), goqu.On(goqu.I("author.id").Eq(goqu.I("book_author.author_id")))).
		Join(goqu.T("book"), goqu.On(goqu.I("book.id").Eq(goqu.I("book_author.book_id")))).
		Select(goqu.I("author.name"), totalRevenue.As("total_revenue")).
		GroupBy(goqu.I("author.name")).
		Order(totalRevenue.Desc()).
		Limit(uint(limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build top revenue query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("top revenue query: %w", err)
	}
	defer rows.Close()

	results := []author.AuthorRevenue{}
	for rows.Next() {
		var rev author.AuthorRevenue
		if err := rows.Scan(&rev.Name, &rev.TotalRevenue); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		results = append(results, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revenue rows: %w", err)
	}

	return results, nil
}
