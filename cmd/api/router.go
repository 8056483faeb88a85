package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/middleware"
	"bookcatalog-backend/internal/shared/response"
	"bookcatalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupReportRoutes(v1, c)
	}

	return router
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.POST("", c.AuthorHandler.CreateAuthor)
		authors.GET("/top-revenue", c.AuthorHandler.TopRevenue)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.PUT("/update-price-by-author", c.BookHandler.UpdatePriceByAuthor)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id/price", c.BookHandler.UpdatePrice)
	}
}

func setupReportRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reports := v1.Group("/reports")
	{
		reports.GET("/yearly", c.ReportHandler.Yearly)
		reports.GET("/authors/value", c.ReportHandler.AuthorBookValues)
		reports.GET("/books/year", c.ReportHandler.BooksByYear)
		reports.GET("/authors/top-avg", c.ReportHandler.TopAuthorsByAvgPrice)
		reports.GET("/countries/rank", c.ReportHandler.CountryRankings)
		reports.GET("/authors/inactive-authors", c.ReportHandler.InactiveAuthors)
		reports.GET("/authors/author-ranking", c.ReportHandler.AuthorRankings)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", "database unreachable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{"status": "ok"})
	}
}
