package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/domains/report"
	"bookcatalog-backend/internal/shared/response"
)

type Handler struct {
	service report.Service
}

func NewHandler(service report.Service) *Handler {
	return &Handler{service: service}
}

// Yearly - GET /v1/reports/yearly?minPublishedYear=2000
func (h *Handler) Yearly(c *gin.Context) {
	minPublishedYear := 2000
	if yearStr := c.Query("minPublishedYear"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(c, "minPublishedYear must be an integer")
			return
		}
		minPublishedYear = year
	}

	results, err := h.service.YearlyStats(c.Request.Context(), minPublishedYear)
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

// AuthorBookValues - GET /v1/reports/authors/value
func (h *Handler) AuthorBookValues(c *gin.Context) {
	results, err := h.service.AuthorBookValues(c.Request.Context())
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

// BooksByYear - GET /v1/reports/books/year
func (h *Handler) BooksByYear(c *gin.Context) {
	results, err := h.service.BooksByYear(c.Request.Context())
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

// TopAuthorsByAvgPrice - GET /v1/reports/authors/top-avg
func (h *Handler) TopAuthorsByAvgPrice(c *gin.Context) {
	results, err := h.service.TopAuthorsByAvgPrice(c.Request.Context())
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

// CountryRankings - GET /v1/reports/countries/rank
func (h *Handler) CountryRankings(c *gin.Context) {
	results, err := h.service.CountryRankings(c.Request.Context())
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

// InactiveAuthors - GET /v1/reports/authors/inactive-authors?yearsThreshold=2
func (h *Handler) InactiveAuthors(c *gin.Context) {
	yearsThreshold := 2
	if thresholdStr := c.Query("yearsThreshold"); thresholdStr != "" {
		threshold, err := strconv.Atoi(thresholdStr)
		if err != nil {
			response.BadRequest(c, "yearsThreshold must be an integer")
			return
		}
		yearsThreshold = threshold
	}

	results, err := h.service.InactiveAuthors(c.Request.Context(), yearsThreshold)
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

// AuthorRankings - GET /v1/reports/authors/author-ranking
func (h *Handler) AuthorRankings(c *gin.Context) {
	results, err := h.service.AuthorRankings(c.Request.Context())
	if writeError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, results)
}

func writeError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	log.Error().Err(err).Msg("report request failed")
	response.InternalServerError(c, "Internal server error")
	return true
}
