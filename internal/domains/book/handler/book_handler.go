package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/response"
)

type Handler struct {
	service book.Service
}

func NewHandler(service book.Service) *Handler {
	return &Handler{service: service}
}

// CreateBook - POST /v1/books
func (h *Handler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		book.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// GetBook - GET /v1/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		book.HandleBookError(c, err)
		return
	}
	if resp == nil {
		response.NotFound(c, "The specified book does not exist")
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// SearchBooks - GET /v1/books/search
// Query params: author, publishedYear, minPrice, maxPrice, page, size
func (h *Handler) SearchBooks(c *gin.Context) {
	filter := book.SearchFilter{
		AuthorName: c.Query("author"),
		Page:       0,
		Size:       10,
	}

	if yearStr := c.Query("publishedYear"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "publishedYear must be an integer")
			return
		}
		filter.PublishedYear = &year
	}

	if minStr := c.Query("minPrice"); minStr != "" {
		minPrice, err := decimal.NewFromString(minStr)
		if err != nil {
			response.BadRequest(c, "minPrice must be a decimal")
			return
		}
		filter.MinPrice = &minPrice
	}

	if maxStr := c.Query("maxPrice"); maxStr != "" {
		maxPrice, err := decimal.NewFromString(maxStr)
		if err != nil {
			response.BadRequest(c, "maxPrice must be a decimal")
			return
		}
		filter.MaxPrice = &maxPrice
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			response.BadRequest(c, "page must be an integer")
			return
		}
		filter.Page = page
	}

	if sizeStr := c.Query("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			response.BadRequest(c, "size must be an integer")
			return
		}
		filter.Size = size
	}

	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		if writeValidationError(c, err) {
			return
		}
		book.HandleBookError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// UpdatePrice - PUT /v1/books/:id/price?newPrice=X
func (h *Handler) UpdatePrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	newPriceStr := c.Query("newPrice")
	if newPriceStr == "" {
		response.BadRequest(c, "newPrice is required")
		return
	}

	newPrice, err := decimal.NewFromString(newPriceStr)
	if err != nil {
		response.BadRequest(c, "newPrice must be a decimal")
		return
	}

	updatedID, err := h.service.UpdatePrice(c.Request.Context(), id, newPrice)
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": updatedID})
}

// UpdatePriceByAuthor - PUT /v1/books/update-price-by-author
func (h *Handler) UpdatePriceByAuthor(c *gin.Context) {
	var req book.UpdatePriceByAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	count, err := h.service.UpdatePriceByAuthor(c.Request.Context(), req)
	if book.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"updatedCount": count,
		"message":      fmt.Sprintf("Updated prices for %d books", count),
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid book id")
		return 0, false
	}
	return id, true
}

func writeValidationError(c *gin.Context, err error) bool {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", vErrs)
		return true
	}
	return false
}
