package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

type mongoCakeRepository struct {
	collection *mongo.Collection
}

func NewMongoCakeRepository(db *mongo.Database) CakeRepository {
	return &mongoCakeRepository{
		collection: db.Collection("cake"),
	}
}

func (m *mongoCakeRepository) List(ctx context.Context) ([]domain.Cake, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cakes: %w", err)
	}
	defer cursor.Close(ctx)

	cakes := []domain.Cake{}
	if err := cursor.All(ctx, &cakes); err != nil {
		return nil, fmt.Errorf("failed to decode cakes: %w", err)
	}
	return cakes, nil
}

func (m *mongoCakeRepository) Get(ctx context.Context, id string) (*domain.Cake, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var cake domain.Cake
	err = m.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&cake)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cake: %w", err)
	}
	return &cake, nil
}

func (m *mongoCakeRepository) Insert(ctx context.Context, cake *domain.Cake) (*domain.InsertAck, error) {
	result, err := m.collection.InsertOne(ctx, cake)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cake: %w", err)
	}
	return &domain.InsertAck{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

// Update replaces the fixed field whitelist by id. Fields outside the
// whitelist stay untouched on the stored document.
func (m *mongoCakeRepository) Update(ctx context.Context, id string, item *domain.Cake) (*domain.UpdateAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"name":        item.Name,
			"description": item.Description,
			"sizes":       item.Sizes,
			"price":       item.Price,
			"images":      item.Images,
			"category":    item.Category,
			"tags":        item.Tags,
			"inStock":     item.InStock,
		},
	}

	result, err := m.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update cake: %w", err)
	}
	return &domain.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (m *mongoCakeRepository) Delete(ctx context.Context, id string) (*domain.DeleteAck, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cake: %w", err)
	}
	return &domain.DeleteAck{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

func (m *mongoCakeRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := m.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count cakes: %w", err)
	}
	return count, nil
}
