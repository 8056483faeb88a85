package repository

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration

	"bookcatalog-backend/internal/domains/report"
)

var dialect = goqu.Dialect("postgres")

// joinedAuthorsBooks is the author ⋈ book_author ⋈ book base every
// per-author aggregation starts from.
func joinedAuthorsBooks() *goqu.SelectDataset {
	return dialect.From("author").
		Join(goqu.T("book_author"), goqu.On(goqu.I("author.id").Eq(goqu.I("book_author.author_id")))).
		Join(goqu.T("book"), goqu.On(goqu.I("book.id").Eq(goqu.I("book_author.book_id"))))
}

func yearlyStatsQuery(minPublishedYear int) *goqu.SelectDataset {
	return dialect.From("book").
		Select(
			goqu.I("book.published_year").As("year"),
			goqu.COUNT(goqu.Star()).As("total_books"),
			goqu.AVG(goqu.I("book.price")).As("avg_price"),
		).
		Where(
			goqu.I("book.published_year").Gte(minPublishedYear),
			goqu.I("book.published_year").IsNotNull(),
		).
		GroupBy(goqu.I("book.published_year")).
		Order(goqu.I("book.published_year").Desc())
}

func authorBookValuesQuery() *goqu.SelectDataset {
	totalValue := goqu.SUM(goqu.I("book.price"))

	return joinedAuthorsBooks().
		Select(
			goqu.I("author.id"),
			goqu.I("author.name"),
			goqu.COUNT(goqu.DISTINCT(goqu.I("book.id"))).As("total_books"),
			totalValue.As("total_value"),
		).
		GroupBy(goqu.I("author.id"), goqu.I("author.name")).
		Order(totalValue.Desc())
}

func booksByYearQuery() *goqu.SelectDataset {
	return dialect.From("book").
		Select(
			goqu.I("book.published_year"),
			goqu.COUNT(goqu.Star()).As("total_books"),
			goqu.SUM(goqu.I("book.price")).As("total_value"),
		).
		GroupBy(goqu.I("book.published_year")).
		Order(goqu.I("book.published_year").Asc())
}

func topAuthorsByAvgPriceQuery() *goqu.SelectDataset {
	avgPrice := goqu.AVG(goqu.I("book.price"))

	return joinedAuthorsBooks().
		Select(
			goqu.I("author.id"),
			goqu.I("author.name"),
			goqu.COUNT(goqu.I("book.id")).As("total_books"),
			avgPrice.As("avg_price"),
		).
		GroupBy(goqu.I("author.id"), goqu.I("author.name")).
		Order(avgPrice.Desc()).
		Limit(5)
}

func countryRankingsQuery() *goqu.SelectDataset {
	totalValue := goqu.SUM(goqu.I("book.price"))

	return joinedAuthorsBooks().
		Select(
			goqu.I("author.country"),
			totalValue.As("total_value"),
			goqu.RANK().Over(goqu.W().OrderBy(totalValue.Desc())).As("rank"),
		).
		GroupBy(goqu.I("author.country")).
		Order(totalValue.Desc())
}

// inactiveAuthorsQuery unions two disjoint author sets: authors with no
// association row at all, and authors whose newest published year is
// strictly below the cutoff. An author with any book at or after the
// cutoff appears in neither branch.
func inactiveAuthorsQuery(cutoffYear int) *goqu.SelectDataset {
	lastPublished := goqu.MAX(goqu.I("book.published_year"))

	noBooks := dialect.From("author").
		Select(
			goqu.I("author.id"),
			goqu.I("author.name"),
			goqu.I("author.country"),
			goqu.V(report.NoBookSentinelYear).As("last_published_year"),
			goqu.V(report.ReasonNoBook).As("reason"),
		).
		Where(goqu.I("author.id").NotIn(
			dialect.From("book_author").SelectDistinct(goqu.I("book_author.author_id")),
		))

	oldBooks := joinedAuthorsBooks().
		Select(
			goqu.I("author.id"),
			goqu.I("author.name"),
			goqu.I("author.country"),
			lastPublished.As("last_published_year"),
			goqu.V(report.ReasonOldBooks).As("reason"),
		).
		GroupBy(goqu.I("author.id"), goqu.I("author.name"), goqu.I("author.country")).
		Having(lastPublished.Lt(cutoffYear))

	return dialect.From(noBooks.UnionAll(oldBooks).As("inactive")).
		Select(
			goqu.C("id"),
			goqu.C("name"),
			goqu.C("country"),
			goqu.C("last_published_year"),
			goqu.C("reason"),
		).
		Order(goqu.C("name").Asc())
}

func authorRankingsQuery() *goqu.SelectDataset {
	totalValue := goqu.SUM(goqu.I("book.price"))

	return joinedAuthorsBooks().
		Select(
			goqu.I("author.id"),
			goqu.I("author.name"),
			goqu.I("author.country"),
			totalValue.As("total_value"),
			goqu.RANK().Over(goqu.W().OrderBy(totalValue.Desc())).As("rank"),
		).
		GroupBy(goqu.I("author.id"), goqu.I("author.name"), goqu.I("author.country")).
		Order(totalValue.Desc())
}
