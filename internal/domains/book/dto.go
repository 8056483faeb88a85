package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/author"
)

// CreateBookRequest is the POST /books body.
type CreateBookRequest struct {
	Title         string             `json:"title"`
	ISBN          string             `json:"isbn"`
	PublishedYear *int               `json:"publishedYear"`
	Price         decimal.Decimal    `json:"price"`
	Authors       []AuthorAssignment `json:"authors"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ISBN, validation.Required),
		validation.Field(&r.Price, validation.By(nonNegativePrice)),
		validation.Field(&r.Authors, validation.Each(validation.By(validAssignment))),
	)
}

func nonNegativePrice(value interface{}) error {
	price, ok := value.(decimal.Decimal)
	if !ok || price.IsNegative() {
		return validation.NewError("validation_price", "price must be a non-negative decimal")
	}
	return nil
}

func validAssignment(value interface{}) error {
	assignment, ok := value.(AuthorAssignment)
	if !ok || assignment.AuthorID <= 0 {
		return validation.NewError("validation_author_id", "authorId must be a positive integer")
	}
	return nil
}

// SearchFilter carries the optional GET /books/search filters plus paging.
// Absent filters contribute no condition; present filters are ANDed.
type SearchFilter struct {
	AuthorName    string
	PublishedYear *int
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Page          int
	Size          int
}

func (f SearchFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Page, validation.Min(0)),
		validation.Field(&f.Size, validation.Min(0)),
	)
}

// UpdatePriceByAuthorRequest is the PUT /books/update-price-by-author body.
// Percent is a percentage adjustment: 10 means +10%.
type UpdatePriceByAuthorRequest struct {
	AuthorName    string          `json:"authorName"`
	AuthorCountry string          `json:"authorCountry"`
	Percent       decimal.Decimal `json:"percent"`
}

// PriceMultiplier converts the percentage into the multiplicative factor
// applied to each qualifying price: 1 + percent/100.
func (r UpdatePriceByAuthorRequest) PriceMultiplier() decimal.Decimal {
	return decimal.NewFromInt(1).Add(r.Percent.Div(decimal.NewFromInt(100)))
}

// BookResponse is the wire representation of a book with its author list.
type BookResponse struct {
	ID            int64                   `json:"id"`
	Title         string                  `json:"title"`
	ISBN          string                  `json:"isbn"`
	PublishedYear *int                    `json:"publishedYear"`
	Price         decimal.Decimal         `json:"price"`
	CreatedAt     string                  `json:"createdAt"`
	UpdatedAt     *string                 `json:"updatedAt,omitempty"`
	Authors       []author.AuthorResponse `json:"authors"`
}

// PageResult is one page of search results. Total is the exact count of
// rows matching the filters, independent of the page requested.
type PageResult struct {
	Content    []BookResponse `json:"content"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	Total      int64          `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// TotalPages is ceil(total/size), or 0 for a zero page size.
func TotalPages(total int64, size int) int {
	if size == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func ToBookResponse(b Book, authors []author.AuthorResponse) BookResponse {
	resp := BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		ISBN:          b.ISBN,
		PublishedYear: b.PublishedYear,
		Price:         b.Price,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		Authors:       authors,
	}
	if resp.Authors == nil {
		resp.Authors = []author.AuthorResponse{}
	}
	if b.UpdatedAt != nil {
		updatedAt := b.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
