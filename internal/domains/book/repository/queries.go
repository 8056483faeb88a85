package repository

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/book"
)

var dialect = goqu.Dialect("postgres")

var bookColumns = []interface{}{
	goqu.I("book.id"),
	goqu.I("book.title"),
	goqu.I("book.isbn"),
	goqu.I("book.published_year"),
	goqu.I("book.price"),
	goqu.I("book.created_at"),
	goqu.I("book.updated_at"),
}

// searchConditions folds the supplied filters into a conjunction. Absent
// filters contribute no condition; there is no OR or negation.
func searchConditions(f book.SearchFilter) []goqu.Expression {
	conds := make([]goqu.Expression, 0, 4)

	if f.AuthorName != "" {
		conds = append(conds, goqu.I("author.name").Like("%"+f.AuthorName+"%"))
	}
	if f.PublishedYear != nil {
		conds = append(conds, goqu.I("book.published_year").Eq(*f.PublishedYear))
	}
	if f.MinPrice != nil {
		conds = append(conds, goqu.I("book.price").Gte(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, goqu.I("book.price").Lte(*f.MaxPrice))
	}

	return conds
}

// withAuthorJoin joins through the association table to author. Inner join:
// a book none of whose authors match is excluded entirely.
func withAuthorJoin(ds *goqu.SelectDataset) *goqu.SelectDataset {
	return ds.
		Join(goqu.T("book_author"), goqu.On(goqu.I("book.id").Eq(goqu.I("book_author.book_id")))).
		Join(goqu.T("author"), goqu.On(goqu.I("author.id").Eq(goqu.I("book_author.author_id"))))
}

// searchPageQuery builds the page query: the author join happens only when
// the author filter is present, and GROUP BY book.id collapses the author
// fan-out it introduces.
func searchPageQuery(f book.SearchFilter) *goqu.SelectDataset {
	ds := dialect.From("book").Select(bookColumns...)

	if f.AuthorName != "" {
		ds = withAuthorJoin(ds)
	}
	if conds := searchConditions(f); len(conds) > 0 {
		ds = ds.Where(conds...)
	}

	return ds.
		GroupBy(goqu.I("book.id")).
		Order(goqu.I("book.created_at").Desc()).
		Limit(uint(f.Size)).
		Offset(uint(f.Page * f.Size))
}

// searchCountQuery counts distinct book identities so the join fan-out
// cannot multiply the total.
func searchCountQuery(f book.SearchFilter) *goqu.SelectDataset {
	ds := dialect.From("book").Select(goqu.COUNT(goqu.DISTINCT(goqu.I("book.id"))))

	if f.AuthorName != "" {
		ds = withAuthorJoin(ds)
	}
	if conds := searchConditions(f); len(conds) > 0 {
		ds = ds.Where(conds...)
	}

	return ds
}

// authorsForBooksQuery fetches all (book, author) pairs for the id set in
// one round trip.
func authorsForBooksQuery(bookIDs []int64) *goqu.SelectDataset {
	return dialect.From("book_author").
		Join(goqu.T("author"), goqu.On(goqu.I("book_author.author_id").Eq(goqu.I("author.id")))).
		Select(
			goqu.I("book_author.book_id"),
			goqu.I("author.id"),
			goqu.I("author.name"),
			goqu.I("author.email"),
			goqu.I("author.birth_date"),
			goqu.I("author.country"),
			goqu.I("author.created_at"),
			goqu.I("book_author.contribution"),
		).
		Where(goqu.I("book_author.book_id").In(bookIDs))
}

// priceChanged reports whether the stored price and the requested price
// differ in value. Scale is ignored: 10.0 and 10.00 are the same price.
func priceChanged(current, next decimal.Decimal) bool {
	return !current.Equal(next)
}

// priceUpdateQuery stamps the new price and updated_at on one book row.
func priceUpdateQuery(id int64, newPrice decimal.Decimal) *goqu.UpdateDataset {
	return dialect.Update("book").
		Set(goqu.Record{
			"price":      newPrice,
			"updated_at": goqu.L("now()"),
		}).
		Where(goqu.C("id").Eq(id))
}

// authorScopeConditions builds the case-insensitive substring conjunction
// over author name and country used by the bulk price update.
func authorScopeConditions(authorName, authorCountry string) []goqu.Expression {
	conds := make([]goqu.Expression, 0, 2)

	if authorName != "" {
		conds = append(conds, goqu.I("author.name").ILike("%"+authorName+"%"))
	}
	if authorCountry != "" {
		conds = append(conds, goqu.I("author.country").ILike("%"+authorCountry+"%"))
	}

	return conds
}

// bulkPriceUpdateQuery builds the single set-based update over every book
// associated with a qualifying author. The subquery uses the same composed
// condition as the scope above.
func bulkPriceUpdateQuery(authorName, authorCountry string, multiplier decimal.Decimal) *goqu.UpdateDataset {
	sub := dialect.From("book_author").
		Join(goqu.T("author"), goqu.On(goqu.I("author.id").Eq(goqu.I("book_author.author_id")))).
		Select(goqu.I("book_author.book_id"))

	if conds := authorScopeConditions(authorName, authorCountry); len(conds) > 0 {
		sub = sub.Where(conds...)
	}

	return dialect.Update("book").
		Set(goqu.Record{"price": goqu.L("price * ?", multiplier)}).
		Where(goqu.I("book.id").In(sub))
}
