package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

type mongoPaymentRepository struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepository{
		collection: db.Collection("payments"),
	}
}

func (m *mongoPaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (*domain.InsertAck, error) {
	result, err := m.collection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	return &domain.InsertAck{Acknowledged: true, InsertedID: result.InsertedID}, nil
}

func (m *mongoPaymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return m.list(ctx, bson.M{"email": email})
}

func (m *mongoPaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	return m.list(ctx, bson.M{})
}

func (m *mongoPaymentRepository) list(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []domain.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

func (m *mongoPaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := m.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return count, nil
}

// OrderStats groups payments per menu category, summing quantity and
// revenue. The pipeline unwinds menuItemIds and joins the menu collection,
// but payment writers store cartIds and nothing populates menu, so against
// live data this yields an empty result. Kept as-is from the upstream
// surface; do not repoint it at cartIds without a schema decision.
func (m *mongoPaymentRepository) OrderStats(ctx context.Context) ([]domain.OrderStat, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$unwind", Value: "$menuItemIds"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		bson.D{{Key: "$unwind", Value: "$menuItems"}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}

	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := []domain.OrderStat{}
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode order stats: %w", err)
	}
	return stats, nil
}

func (m *mongoPaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}

	cursor, err := m.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}
