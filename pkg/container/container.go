package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"bookcatalog-backend/internal/config"
	"bookcatalog-backend/internal/infrastructure/database"

	"bookcatalog-backend/internal/domains/author"
	authorHandler "bookcatalog-backend/internal/domains/author/handler"
	authorRepo "bookcatalog-backend/internal/domains/author/repository"
	authorService "bookcatalog-backend/internal/domains/author/service"

	"bookcatalog-backend/internal/domains/book"
	bookHandler "bookcatalog-backend/internal/domains/book/handler"
	bookRepo "bookcatalog-backend/internal/domains/book/repository"
	bookService "bookcatalog-backend/internal/domains/book/service"

	"bookcatalog-backend/internal/domains/report"
	reportHandler "bookcatalog-backend/internal/domains/report/handler"
	reportRepo "bookcatalog-backend/internal/domains/report/repository"
	reportService "bookcatalog-backend/internal/domains/report/service"
)

// Container holds the full dependency graph: config → database →
// repositories → services → handlers. Everything is a singleton for the
// application lifetime.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorRepo author.Repository
	BookRepo   book.Repository
	ReportRepo report.Repository

	AuthorService author.Service
	BookService   book.Service
	ReportService report.Service

	AuthorHandler *authorHandler.Handler
	BookHandler   *bookHandler.Handler
	ReportHandler *reportHandler.Handler
}

// NewContainer builds the dependency graph in order; a failure at any step
// aborts application startup.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.ReportRepo = reportRepo.NewPostgresRepository(c.DB.Pool)

	c.AuthorService = authorService.NewService(c.AuthorRepo)
	c.BookService = bookService.NewService(c.BookRepo)
	c.ReportService = reportService.NewService(c.ReportRepo)

	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.ReportHandler = reportHandler.NewHandler(c.ReportService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
