package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

type mongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) CartRepository {
	return &mongoCartRepository{
		collection: db.Collection("carts"),
	}
}

func (m *mongoCartRepository) Insert(ctx context.Context, item bson.M) (*domain.InsertAck, error) {
	result, err := m.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}
	return &domain.InsertAck{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (m *mongoCartRepository) ListByEmail(ctx context.Context, email string) ([]bson.M, error) {
	cursor, err := m.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []bson.M{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	return items, nil
}

func (m *mongoCartRepository) Delete(ctx context.Context, id string) (*domain.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

// DeleteByIDs bulk-removes exactly the listed rows; rows not listed are
// untouched.
func (m *mongoCartRepository) DeleteByIDs(ctx context.Context, ids []string) (*domain.DeleteAck, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
		oids = append(oids, oid)
	}

	result, err := m.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart items: %w", err)
	}
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
