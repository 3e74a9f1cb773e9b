package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joykbiswas/cupcake-backend/internal/cache"
	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

type cakeRepoMock struct {
	cakes     []domain.Cake
	listCalls int
	insertAck *domain.InsertAck
	updateAck *domain.UpdateAck
	deleteAck *domain.DeleteAck
	err       error
}

func (m *cakeRepoMock) List(ctx context.Context) ([]domain.Cake, error) {
	m.listCalls++
	return m.cakes, m.err
}

func (m *cakeRepoMock) Get(ctx context.Context, id string) (*domain.Cake, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.cakes) == 0 {
		return nil, nil
	}
	return &m.cakes[0], nil
}

func (m *cakeRepoMock) Insert(ctx context.Context, cake *domain.Cake) (*domain.InsertAck, error) {
	return m.insertAck, m.err
}

func (m *cakeRepoMock) Update(ctx context.Context, id string, item *domain.Cake) (*domain.UpdateAck, error) {
	return m.updateAck, m.err
}

func (m *cakeRepoMock) Delete(ctx context.Context, id string) (*domain.DeleteAck, error) {
	return m.deleteAck, m.err
}

func (m *cakeRepoMock) EstimatedCount(ctx context.Context) (int64, error) {
	return int64(len(m.cakes)), m.err
}

type catalogCacheMock struct {
	cakes       []domain.Cake
	setCalls    chan []domain.Cake
	invalidated int
}

func newCatalogCacheMock() *catalogCacheMock {
	return &catalogCacheMock{setCalls: make(chan []domain.Cake, 1)}
}

func (m *catalogCacheMock) GetList(ctx context.Context) ([]domain.Cake, error) {
	if m.cakes == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.cakes, nil
}

func (m *catalogCacheMock) SetList(ctx context.Context, cakes []domain.Cake) error {
	m.setCalls <- cakes
	return nil
}

func (m *catalogCacheMock) Invalidate(ctx context.Context) error {
	m.invalidated++
	return nil
}

func TestList_CacheHit_SkipsRepo(t *testing.T) {
	repo := &cakeRepoMock{}
	c := newCatalogCacheMock()
	c.cakes = []domain.Cake{{Name: "Carrot Cake"}}

	svc := NewCatalogService(repo, c)

	cakes, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cakes, 1)
	assert.Equal(t, 0, repo.listCalls)
}

func TestList_CacheMiss_ReadsRepoAndFillsCache(t *testing.T) {
	repo := &cakeRepoMock{cakes: []domain.Cake{{Name: "Lemon Drizzle"}, {Name: "Red Velvet"}}}
	c := newCatalogCacheMock()

	svc := NewCatalogService(repo, c)

	cakes, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cakes, 2)
	assert.Equal(t, 1, repo.listCalls)

	// The cache fill runs in the background
	select {
	case cached := <-c.setCalls:
		assert.Len(t, cached, 2)
	case <-time.After(time.Second):
		t.Fatal("cache was never filled after a miss")
	}
}

func TestWrites_InvalidateCache(t *testing.T) {
	repo := &cakeRepoMock{
		insertAck: &domain.InsertAck{Acknowledged: true, InsertedID: "abc"},
		updateAck: &domain.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1},
		deleteAck: &domain.DeleteAck{Acknowledged: true, DeletedCount: 1},
	}
	c := newCatalogCacheMock()
	svc := NewCatalogService(repo, c)
	ctx := context.Background()

	_, err := svc.Insert(ctx, &domain.Cake{Name: "Banoffee"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "65a1b2c3d4e5f6a7b8c9d0e1", &domain.Cake{Name: "Banoffee"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "65a1b2c3d4e5f6a7b8c9d0e1")
	require.NoError(t, err)

	assert.Equal(t, 3, c.invalidated)
}
