package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

const uniqueViolationCode = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

// Create inserts the book and its author associations in one transaction.
// The duplicate-title check locks an existing row with the same title so a
// concurrent creation blocks until this transaction finishes; a brand-new
// duplicate title racing past the check is caught by the unique constraint.
func (r *postgresRepository) Create(ctx context.Context, b *book.Book, assignments []book.AuthorAssignment) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		lockSQL, lockArgs, err := dialect.From("book").
			Select("id").
			Where(goqu.C("title").Eq(b.Title)).
			ForUpdate(exp.Wait).
			Prepared(true).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build title lock query: %w", err)
		}

		var existingID int64
		err = tx.QueryRow(ctx, lockSQL, lockArgs...).Scan(&existingID)
		if err == nil {
			return book.ErrTitleAlreadyExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("title lock query: %w", err)
		}

		insertSQL, insertArgs, err := dialect.Insert("book").
			Rows(goqu.Record{
				"title":          b.Title,
				"isbn":           b.ISBN,
				"published_year": b.PublishedYear,
				"price":          b.Price,
			}).
			Returning("id", "created_at").
			Prepared(true).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert book query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&b.ID, &b.CreatedAt); err != nil {
			return fmt.Errorf("insert book: %w", err)
		}

		if len(assignments) == 0 {
			return nil
		}

		now := time.Now()
		records := make([]interface{}, 0, len(assignments))
		for _, assignment := range assignments {
			records = append(records, goqu.Record{
				"book_id":      b.ID,
				"author_id":    assignment.AuthorID,
				"contribution": assignment.Contribution,
				"created_at":   now,
			})
		}

		assocSQL, assocArgs, err := dialect.Insert("book_author").
			Rows(records...).
			Prepared(true).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build insert associations query: %w", err)
		}

		if _, err := tx.Exec(ctx, assocSQL, assocArgs...); err != nil {
			return fmt.Errorf("insert book associations: %w", err)
		}

		return nil
	})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return book.ErrTitleAlreadyExists
	}

	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	sql, args, err := dialect.From("book").
		Select(bookColumns...).
		Where(goqu.I("book.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get book query: %w", err)
	}

	var b book.Book
	err = r.pool.QueryRow(ctx, sql, args...).Scan(
		&b.ID, &b.Title, &b.ISBN, &b.PublishedYear, &b.Price, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) AuthorsForBooks(ctx context.Context, bookIDs []int64) (map[int64][]author.AuthorResponse, error) {
	grouped := make(map[int64][]author.AuthorResponse)
	if len(bookIDs) == 0 {
		return grouped, nil
	}

	sql, args, err := authorsForBooksQuery(bookIDs).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build authors for books query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("authors for books query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookID int64
		var a author.Author
		var contribution *string
		if err := rows.Scan(&bookID, &a.ID, &a.Name, &a.Email, &a.BirthDate, &a.Country, &a.CreatedAt, &contribution); err != nil {
			return nil, fmt.Errorf("scan book author row: %w", err)
		}

		resp := author.ToAuthorResponse(a)
		resp.Contribution = contribution
		grouped[bookID] = append(grouped[bookID], resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("book author rows: %w", err)
	}

	return grouped, nil
}

func (r *postgresRepository) Search(ctx context.Context, filter book.SearchFilter) ([]book.Book, int64, error) {
	countSQL, countArgs, err := searchCountQuery(filter).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	// A zero page size never yields content; goqu would render LIMIT 0 as
	// no limit at all, so skip the page query entirely.
	if filter.Size == 0 {
		return []book.Book{}, total, nil
	}

	pageSQL, pageArgs, err := searchPageQuery(filter).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	rows, err := r.pool.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("page query: %w", err)
	}
	defer rows.Close()

	books := []book.Book{}
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.PublishedYear, &b.Price, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("book rows: %w", err)
	}

	return books, total, nil
}

// UpdatePrice serializes concurrent updates to the same book through a row
// lock held for the duration of the transaction. A no-op update (same
// decimal value) leaves the row, including updated_at, untouched.
func (r *postgresRepository) UpdatePrice(ctx context.Context, id int64, newPrice decimal.Decimal) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		lockSQL, lockArgs, err := dialect.From("book").
			Select("id", "price").
			Where(goqu.C("id").Eq(id)).
			ForUpdate(exp.Wait).
			Prepared(true).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build price lock query: %w", err)
		}

		var lockedID int64
		var currentPrice decimal.Decimal
		err = tx.QueryRow(ctx, lockSQL, lockArgs...).Scan(&lockedID, &currentPrice)
		if errors.Is(err, pgx.ErrNoRows) {
			return book.ErrBookNotFound
		}
		if err != nil {
			return fmt.Errorf("price lock query: %w", err)
		}

		if !priceChanged(currentPrice, newPrice) {
			return nil
		}

		updateSQL, updateArgs, err := priceUpdateQuery(id, newPrice).
			Prepared(true).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build price update query: %w", err)
		}

		if _, err := tx.Exec(ctx, updateSQL, updateArgs...); err != nil {
			return fmt.Errorf("update price: %w", err)
		}

		return nil
	})
}

func (r *postgresRepository) UpdatePriceByAuthor(ctx context.Context, authorName, authorCountry string, multiplier decimal.Decimal) (int64, error) {
	sql, args, err := bulkPriceUpdateQuery(authorName, authorCountry, multiplier).Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build bulk price update query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk price update: %w", err)
	}

	return tag.RowsAffected(), nil
}
