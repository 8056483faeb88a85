package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/book"
)

type stubService struct {
	createResp   *book.BookResponse
	createErr    error
	getResp      *book.BookResponse
	getErr       error
	searchFilter book.SearchFilter
	searchResp   *book.PageResult
	searchErr    error
	updateErr    error
	bulkCount    int64
	bulkErr      error
}

func (s *stubService) Create(_ context.Context, _ book.CreateBookRequest) (*book.BookResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubService) GetByID(_ context.Context, _ int64) (*book.BookResponse, error) {
	return s.getResp, s.getErr
}

func (s *stubService) Search(_ context.Context, filter book.SearchFilter) (*book.PageResult, error) {
	s.searchFilter = filter
	return s.searchResp, s.searchErr
}

func (s *stubService) UpdatePrice(_ context.Context, id int64, _ decimal.Decimal) (int64, error) {
	return id, s.updateErr
}

func (s *stubService) UpdatePriceByAuthor(_ context.Context, _ book.UpdatePriceByAuthorRequest) (int64, error) {
	return s.bulkCount, s.bulkErr
}

func setupRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	books := router.Group("/api/v1/books")
	books.POST("", h.CreateBook)
	books.GET("/search", h.SearchBooks)
	books.PUT("/update-price-by-author", h.UpdatePriceByAuthor)
	books.GET("/:id", h.GetBook)
	books.PUT("/:id/price", h.UpdatePrice)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func errorCode(t *testing.T, envelope map[string]interface{}) string {
	t.Helper()
	errObj, ok := envelope["error"].(map[string]interface{})
	require.True(t, ok, "expected error object in envelope: %v", envelope)
	return errObj["code"].(string)
}

func TestCreateBook(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &stubService{createResp: &book.BookResponse{ID: 42, Title: "SICP"}}
		router := setupRouter(svc)

		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/books",
			`{"title":"SICP","isbn":"isbn-1","price":"25.00","authors":[{"authorId":1}]}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, true, envelope["success"])
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(42), data["id"])
	})

	t.Run("duplicate_title_is_bad_request", func(t *testing.T) {
		svc := &stubService{createErr: book.ErrTitleAlreadyExists}
		router := setupRouter(svc)

		rec, envelope := doRequest(t, router, http.MethodPost, "/api/v1/books",
			`{"title":"SICP","isbn":"isbn-1","price":"25.00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "TITLE_EXISTS", errorCode(t, envelope))
	})

	t.Run("malformed_body", func(t *testing.T) {
		router := setupRouter(&stubService{})

		rec, _ := doRequest(t, router, http.MethodPost, "/api/v1/books", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetBook(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &stubService{getResp: &book.BookResponse{ID: 7, Title: "SICP"}}
		router := setupRouter(svc)

		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/books/7", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, "SICP", data["title"])
	})

	t.Run("absent_book_is_not_found", func(t *testing.T) {
		router := setupRouter(&stubService{})

		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/books/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, envelope))
	})

	t.Run("non_numeric_id", func(t *testing.T) {
		router := setupRouter(&stubService{})

		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/books/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchBooks(t *testing.T) {
	emptyPage := &book.PageResult{Content: []book.BookResponse{}, Page: 0, Size: 10}

	t.Run("defaults_applied", func(t *testing.T) {
		svc := &stubService{searchResp: emptyPage}
		router := setupRouter(svc)

		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/books/search", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, svc.searchFilter.Page)
		assert.Equal(t, 10, svc.searchFilter.Size)
		assert.Empty(t, svc.searchFilter.AuthorName)
		assert.Nil(t, svc.searchFilter.PublishedYear)
	})

	t.Run("all_filters_parsed", func(t *testing.T) {
		svc := &stubService{searchResp: emptyPage}
		router := setupRouter(svc)

		rec, _ := doRequest(t, router, http.MethodGet,
			"/api/v1/books/search?author=Ada&publishedYear=1999&minPrice=10.50&maxPrice=99&page=2&size=5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Ada", svc.searchFilter.AuthorName)
		require.NotNil(t, svc.searchFilter.PublishedYear)
		assert.Equal(t, 1999, *svc.searchFilter.PublishedYear)
		require.NotNil(t, svc.searchFilter.MinPrice)
		assert.True(t, decimal.RequireFromString("10.50").Equal(*svc.searchFilter.MinPrice))
		assert.Equal(t, 2, svc.searchFilter.Page)
		assert.Equal(t, 5, svc.searchFilter.Size)
	})

	t.Run("bad_year_is_rejected", func(t *testing.T) {
		router := setupRouter(&stubService{searchResp: emptyPage})

		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/books/search?publishedYear=xyz", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad_price_is_rejected", func(t *testing.T) {
		router := setupRouter(&stubService{searchResp: emptyPage})

		rec, _ := doRequest(t, router, http.MethodGet, "/api/v1/books/search?minPrice=cheap", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("page_envelope_shape", func(t *testing.T) {
		svc := &stubService{searchResp: &book.PageResult{
			Content:    []book.BookResponse{{ID: 1, Title: "SICP"}},
			Page:       0,
			Size:       10,
			Total:      1,
			TotalPages: 1,
		}}
		router := setupRouter(svc)

		rec, envelope := doRequest(t, router, http.MethodGet, "/api/v1/books/search", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(1), data["total"])
		assert.Equal(t, float64(1), data["totalPages"])
		content := data["content"].([]interface{})
		require.Len(t, content, 1)
	})
}

func TestUpdatePrice(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router := setupRouter(&stubService{})

		rec, envelope := doRequest(t, router, http.MethodPut, "/api/v1/books/42/price?newPrice=19.99", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		data := envelope["data"].(map[string]interface{})
		assert.Equal(t, float64(42), data["id"])
	})

	t.Run("missing_new_price", func(t *testing.T) {
		router := setupRouter(&stubService{})

		rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/books/42/price", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown_book", func(t *testing.T) {
		router := setupRouter(&stubService{updateErr: book.ErrBookNotFound})

		rec, envelope := doRequest(t, router, http.MethodPut, "/api/v1/books/999/price?newPrice=5", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", errorCode(t, envelope))
	})
}

func TestUpdatePriceByAuthor(t *testing.T) {
	svc := &stubService{bulkCount: 12}
	router := setupRouter(svc)

	rec, envelope := doRequest(t, router, http.MethodPut, "/api/v1/books/update-price-by-author",
		`{"authorName":"Ada","authorCountry":"UK","percent":"10"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["updatedCount"])
	assert.Equal(t, "Updated prices for 12 books", data["message"])
}
