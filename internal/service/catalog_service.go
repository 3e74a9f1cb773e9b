package service

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/joykbiswas/cupcake-backend/internal/cache"
	"github.com/joykbiswas/cupcake-backend/internal/domain"
	"github.com/joykbiswas/cupcake-backend/internal/repository"
)

// CatalogService serves the cake collection through a read-through cache.
// Cache failures are logged and the store is used directly; every write
// invalidates the cached listing.
type CatalogService struct {
	repo  repository.CakeRepository
	cache cache.CatalogCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCatalogService(repo repository.CakeRepository, cache cache.CatalogCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Cake, error) {
	// Use singleflight so concurrent cache misses hit the store once
	v, err, _ := s.sfg.Do("cakes", func() (interface{}, error) {
		cakes, err := s.cache.GetList(ctx)
		if err == nil {
			return cakes, nil
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		cakes, err = s.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if errSet := s.cache.SetList(context.Background(), cakes); errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return cakes, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Cake), nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Cake, error) {
	return s.repo.Get(ctx, id)
}

func (s *CatalogService) Insert(ctx context.Context, cake *domain.Cake) (*domain.InsertAck, error) {
	ack, err := s.repo.Insert(ctx, cake)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return ack, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, item *domain.Cake) (*domain.UpdateAck, error) {
	ack, err := s.repo.Update(ctx, id, item)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return ack, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) (*domain.DeleteAck, error) {
	ack, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return ack, nil
}

func (s *CatalogService) EstimatedCount(ctx context.Context) (int64, error) {
	return s.repo.EstimatedCount(ctx)
}

func (s *CatalogService) invalidate() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
