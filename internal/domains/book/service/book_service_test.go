package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

// fakeRepository is a hand-rolled book.Repository double with canned results
// and call capture.
type fakeRepository struct {
	createErr     error
	createdID     int64
	assignments   []book.AuthorAssignment
	getBook       *book.Book
	getErr        error
	authorsByBook map[int64][]author.AuthorResponse
	authorsCalled bool
	searchBooks   []book.Book
	searchTotal   int64
	searchErr     error
	updateErr     error
	bulkName      string
	bulkCountry   string
	bulkFactor    decimal.Decimal
	bulkUpdated   int64
}

func (f *fakeRepository) Create(_ context.Context, b *book.Book, assignments []book.AuthorAssignment) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = f.createdID
	b.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f.assignments = assignments
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, _ int64) (*book.Book, error) {
	return f.getBook, f.getErr
}

func (f *fakeRepository) AuthorsForBooks(_ context.Context, _ []int64) (map[int64][]author.AuthorResponse, error) {
	f.authorsCalled = true
	return f.authorsByBook, nil
}

func (f *fakeRepository) Search(_ context.Context, _ book.SearchFilter) ([]book.Book, int64, error) {
	return f.searchBooks, f.searchTotal, f.searchErr
}

func (f *fakeRepository) UpdatePrice(_ context.Context, _ int64, _ decimal.Decimal) error {
	return f.updateErr
}

func (f *fakeRepository) UpdatePriceByAuthor(_ context.Context, name, country string, multiplier decimal.Decimal) (int64, error) {
	f.bulkName = name
	f.bulkCountry = country
	f.bulkFactor = multiplier
	return f.bulkUpdated, nil
}

func testBook(id int64, title string) book.Book {
	return book.Book{
		ID:        id,
		Title:     title,
		ISBN:      "isbn-" + title,
		Price:     decimal.RequireFromString("25.00"),
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestCreate_ReturnsEnrichedBook(t *testing.T) {
	created := testBook(42, "SICP")
	repo := &fakeRepository{
		createdID: 42,
		getBook:   &created,
		authorsByBook: map[int64][]author.AuthorResponse{
			42: {{ID: 1, Name: "Abelson"}},
		},
	}
	svc := NewService(repo)

	resp, err := svc.Create(context.Background(), book.CreateBookRequest{
		Title:   "SICP",
		ISBN:    "isbn-SICP",
		Price:   decimal.RequireFromString("25.00"),
		Authors: []book.AuthorAssignment{{AuthorID: 1}},
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(42), resp.ID)
	require.Len(t, resp.Authors, 1)
	assert.Equal(t, "Abelson", resp.Authors[0].Name)
	assert.Len(t, repo.assignments, 1)
}

func TestCreate_PropagatesDuplicateTitle(t *testing.T) {
	repo := &fakeRepository{createErr: book.ErrTitleAlreadyExists}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), book.CreateBookRequest{
		Title: "SICP",
		ISBN:  "isbn",
		Price: decimal.Zero,
	})

	assert.ErrorIs(t, err, book.ErrTitleAlreadyExists)
}

func TestCreate_RejectsInvalidRequest(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), book.CreateBookRequest{ISBN: "isbn"})

	assert.Error(t, err)
	assert.False(t, repo.authorsCalled)
}

func TestGetByID_AbsentBookIsNilNil(t *testing.T) {
	svc := NewService(&fakeRepository{})

	resp, err := svc.GetByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSearch_EmptyPageSkipsEnrichment(t *testing.T) {
	repo := &fakeRepository{searchTotal: 37}
	svc := NewService(repo)

	result, err := svc.Search(context.Background(), book.SearchFilter{Page: 5, Size: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(37), result.Total)
	assert.Equal(t, 4, result.TotalPages)
	assert.NotNil(t, result.Content)
	assert.Empty(t, result.Content)
	assert.False(t, repo.authorsCalled, "empty page must not trigger the author fan-out query")
}

func TestSearch_PreservesRowOrderAndAttachesAuthors(t *testing.T) {
	repo := &fakeRepository{
		searchBooks: []book.Book{testBook(7, "newest"), testBook(3, "older")},
		searchTotal: 2,
		authorsByBook: map[int64][]author.AuthorResponse{
			3: {{ID: 1, Name: "Ada"}},
			7: {{ID: 2, Name: "Barbara"}, {ID: 3, Name: "Grace"}},
		},
	}
	svc := NewService(repo)

	result, err := svc.Search(context.Background(), book.SearchFilter{Page: 0, Size: 10})

	require.NoError(t, err)
	require.Len(t, result.Content, 2)
	assert.Equal(t, int64(7), result.Content[0].ID)
	assert.Equal(t, int64(3), result.Content[1].ID)
	assert.Len(t, result.Content[0].Authors, 2)
	assert.Len(t, result.Content[1].Authors, 1)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearch_BookWithoutAuthorsGetsEmptyList(t *testing.T) {
	repo := &fakeRepository{
		searchBooks:   []book.Book{testBook(5, "orphan")},
		searchTotal:   1,
		authorsByBook: map[int64][]author.AuthorResponse{},
	}
	svc := NewService(repo)

	result, err := svc.Search(context.Background(), book.SearchFilter{Page: 0, Size: 10})

	require.NoError(t, err)
	require.Len(t, result.Content, 1)
	assert.NotNil(t, result.Content[0].Authors)
	assert.Empty(t, result.Content[0].Authors)
}

func TestSearch_RejectsNegativePage(t *testing.T) {
	svc := NewService(&fakeRepository{})

	_, err := svc.Search(context.Background(), book.SearchFilter{Page: -1, Size: 10})

	assert.Error(t, err)
}

func TestUpdatePrice(t *testing.T) {
	t.Run("returns_updated_id", func(t *testing.T) {
		svc := NewService(&fakeRepository{})

		id, err := svc.UpdatePrice(context.Background(), 42, decimal.RequireFromString("9.99"))

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("passes_through_not_found", func(t *testing.T) {
		svc := NewService(&fakeRepository{updateErr: book.ErrBookNotFound})

		_, err := svc.UpdatePrice(context.Background(), 999, decimal.Zero)

		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestUpdatePriceByAuthor_ConvertsPercentToMultiplier(t *testing.T) {
	repo := &fakeRepository{bulkUpdated: 12}
	svc := NewService(repo)

	updated, err := svc.UpdatePriceByAuthor(context.Background(), book.UpdatePriceByAuthorRequest{
		AuthorName:    "Ada",
		AuthorCountry: "UK",
		Percent:       decimal.RequireFromString("10"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), updated)
	assert.Equal(t, "Ada", repo.bulkName)
	assert.Equal(t, "UK", repo.bulkCountry)
	assert.True(t, decimal.RequireFromString("1.1").Equal(repo.bulkFactor),
		"expected multiplier 1.1, got %s", repo.bulkFactor)
}
