package author

import "context"

// Service is the author business logic contract.
type Service interface {
	Create(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error)
	TopAuthorsByRevenue(ctx context.Context, limit int) ([]AuthorRevenue, error)
}
