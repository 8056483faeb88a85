package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/domains/book"
)

type BookService struct {
	repo book.Repository
}

func NewService(repo book.Repository) book.Service {
	return &BookService{repo: repo}
}

// Create inserts the book with its author associations, then returns the
// fully enriched book via the single-book fetch path.
func (s *BookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.BookResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := book.Book{
		Title:         req.Title,
		ISBN:          req.ISBN,
		PublishedYear: req.PublishedYear,
		Price:         req.Price,
	}

	if err := s.repo.Create(ctx, &b, req.Authors); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, b.ID)
}

func (s *BookService) GetByID(ctx context.Context, id int64) (*book.BookResponse, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if b == nil {
		return nil, nil
	}

	authorsByBook, err := s.repo.AuthorsForBooks(ctx, []int64{b.ID})
	if err != nil {
		return nil, fmt.Errorf("enrich book authors: %w", err)
	}

	resp := book.ToBookResponse(*b, authorsByBook[b.ID])
	return &resp, nil
}

func (s *BookService) Search(ctx context.Context, filter book.SearchFilter) (*book.PageResult, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	books, total, err := s.repo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	result := &book.PageResult{
		Content:    []book.BookResponse{},
		Page:       filter.Page,
		Size:       filter.Size,
		Total:      total,
		TotalPages: book.TotalPages(total, filter.Size),
	}

	// Empty page: skip the enrichment round trip, the total is already known.
	if len(books) == 0 {
		return result, nil
	}

	bookIDs := make([]int64, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
	}

	authorsByBook, err := s.repo.AuthorsForBooks(ctx, bookIDs)
	if err != nil {
		return nil, fmt.Errorf("enrich page authors: %w", err)
	}

	result.Content = foldAuthors(books, authorsByBook)
	return result, nil
}

func (s *BookService) UpdatePrice(ctx context.Context, id int64, newPrice decimal.Decimal) (int64, error) {
	if err := s.repo.UpdatePrice(ctx, id, newPrice); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *BookService) UpdatePriceByAuthor(ctx context.Context, req book.UpdatePriceByAuthorRequest) (int64, error) {
	updated, err := s.repo.UpdatePriceByAuthor(ctx, req.AuthorName, req.AuthorCountry, req.PriceMultiplier())
	if err != nil {
		return 0, fmt.Errorf("bulk price update: %w", err)
	}
	return updated, nil
}

// foldAuthors attaches each book's author list, preserving the page order
// of the book rows.
func foldAuthors(books []book.Book, authorsByBook map[int64][]author.AuthorResponse) []book.BookResponse {
	content := make([]book.BookResponse, len(books))
	for i, b := range books {
		content[i] = book.ToBookResponse(b, authorsByBook[b.ID])
	}
	return content
}
