package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

var ErrInvalidID = errors.New("invalid object id")

// Consumers define these interfaces, not the MongoDB implementations.

// CakeRepository covers the catalog collection. Get returns (nil, nil)
// when no document matches, so a miss surfaces as a null body rather than
// a distinct not-found outcome.
type CakeRepository interface {
	List(ctx context.Context) ([]domain.Cake, error)
	Get(ctx context.Context, id string) (*domain.Cake, error)
	Insert(ctx context.Context, cake *domain.Cake) (*domain.InsertAck, error)
	Update(ctx context.Context, id string, item *domain.Cake) (*domain.UpdateAck, error)
	Delete(ctx context.Context, id string) (*domain.DeleteAck, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// UserRepository stores user documents verbatim; email is the natural key.
// FindByEmail returns (nil, nil) when the email is absent.
type UserRepository interface {
	List(ctx context.Context) ([]bson.M, error)
	FindByEmail(ctx context.Context, email string) (bson.M, error)
	Insert(ctx context.Context, user bson.M) (*domain.InsertAck, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// CartRepository stores cart rows verbatim and deletes them one at a time
// or in bulk when a payment references them.
type CartRepository interface {
	Insert(ctx context.Context, item bson.M) (*domain.InsertAck, error)
	ListByEmail(ctx context.Context, email string) ([]bson.M, error)
	Delete(ctx context.Context, id string) (*domain.DeleteAck, error)
	DeleteByIDs(ctx context.Context, ids []string) (*domain.DeleteAck, error)
}

// PaymentRepository is append-only storage plus the two reporting
// aggregations.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (*domain.InsertAck, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	EstimatedCount(ctx context.Context) (int64, error)
	OrderStats(ctx context.Context) ([]domain.OrderStat, error)
	TotalRevenue(ctx context.Context) (float64, error)
}
