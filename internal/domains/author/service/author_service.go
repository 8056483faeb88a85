package service

import (
	"context"
	"fmt"

	"bookcatalog-backend/internal/domains/author"
)

type AuthorService struct {
	repo author.Repository
}

func NewService(repo author.Repository) author.Service {
	return &AuthorService{repo: repo}
}

func (s *AuthorService) Create(ctx context.Context, req author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := author.Author{
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Country:   req.Country,
	}

	if err := s.repo.Create(ctx, &a); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	resp := author.ToAuthorResponse(a)
	return &resp, nil
}

func (s *AuthorService) TopAuthorsByRevenue(ctx context.Context, limit int) ([]author.AuthorRevenue, error) {
	if limit <= 0 {
		return nil, author.ErrInvalidLimit
	}

	results, err := s.repo.TopByRevenue(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top authors by revenue: %w", err)
	}

	return results, nil
}
