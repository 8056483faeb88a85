package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookcatalog-backend/internal/domains/author"
)

type fakeRepository struct {
	createErr     error
	createdID     int64
	revenues      []author.AuthorRevenue
	capturedLimit int
}

func (f *fakeRepository) Create(_ context.Context, a *author.Author) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = f.createdID
	a.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return nil
}

func (f *fakeRepository) TopByRevenue(_ context.Context, limit int) ([]author.AuthorRevenue, error) {
	f.capturedLimit = limit
	return f.revenues, nil
}

func TestCreate(t *testing.T) {
	t.Run("fills_generated_fields", func(t *testing.T) {
		svc := NewService(&fakeRepository{createdID: 9})

		resp, err := svc.Create(context.Background(), author.CreateAuthorRequest{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.ID)
		assert.NotEmpty(t, resp.CreatedAt)
	})

	t.Run("rejects_invalid_email", func(t *testing.T) {
		svc := NewService(&fakeRepository{})

		_, err := svc.Create(context.Background(), author.CreateAuthorRequest{
			Name:  "Ada Lovelace",
			Email: "nope",
		})

		assert.Error(t, err)
	})
}

func TestTopAuthorsByRevenue(t *testing.T) {
	t.Run("passes_limit_through", func(t *testing.T) {
		repo := &fakeRepository{revenues: []author.AuthorRevenue{
			{Name: "Ada", TotalRevenue: decimal.RequireFromString("100")},
		}}
		svc := NewService(repo)

		results, err := svc.TopAuthorsByRevenue(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, 3, repo.capturedLimit)
		require.Len(t, results, 1)
		assert.Equal(t, "Ada", results[0].Name)
	})

	t.Run("rejects_non_positive_limit", func(t *testing.T) {
		svc := NewService(&fakeRepository{})

		_, err := svc.TopAuthorsByRevenue(context.Background(), 0)

		assert.ErrorIs(t, err, author.ErrInvalidLimit)
	})
}
