package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/response"
)

type Handler struct {
	service author.Service
}

func NewHandler(service author.Service) *Handler {
	return &Handler{service: service}
}

// CreateAuthor - POST /v1/authors
// Params (query or form): name, email, birthDate (ISO date), country
func (h *Handler) CreateAuthor(c *gin.Context) {
	req := author.CreateAuthorRequest{
		Name:  param(c, "name"),
		Email: param(c, "email"),
	}

	if birthDate := param(c, "birthDate"); birthDate != "" {
		parsed, err := time.Parse("2006-01-02", birthDate)
		if err != nil {
			response.BadRequest(c, "birthDate must be an ISO date (YYYY-MM-DD)")
			return
		}
		req.BirthDate = &parsed
	}

	if country := param(c, "country"); country != "" {
		req.Country = &country
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid author payload", vErrs)
			return
		}
		author.HandleAuthorError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// TopRevenue - GET /v1/authors/top-revenue?limit=5
func (h *Handler) TopRevenue(c *gin.Context) {
	limit := 5
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			response.BadRequest(c, "limit must be an integer")
			return
		}
		limit = n
	}

	results, err := h.service.TopAuthorsByRevenue(c.Request.Context(), limit)
	if author.HandleAuthorError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, results)
}

// param reads a request parameter from the query string, falling back to
// form data.
func param(c *gin.Context, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.PostForm(key)
}
