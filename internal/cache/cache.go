package cache

import (
	"context"
	"errors"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

// CatalogCache keeps the cake listing hot between catalog writes.
type CatalogCache interface {
	GetList(ctx context.Context) ([]domain.Cake, error)
	SetList(ctx context.Context, cakes []domain.Cake) error
	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
