package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cake is a catalog item in the cake collection. Updates replace exactly
// the fields below; anything else stored on the document is left alone.
type Cake struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Sizes       []string           `bson:"sizes" json:"sizes"`
	Price       float64            `bson:"price" json:"price"`
	Images      []string           `bson:"images" json:"images"`
	Category    string             `bson:"category" json:"category"`
	Tags        []string           `bson:"tags" json:"tags"`
	InStock     bool               `bson:"inStock" json:"inStock"`
}

// Payment is an append-only record of a completed charge. CartIds lists the
// cart rows the charge paid for; those rows are purged after the record is
// stored.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	CartIds       []string           `bson:"cartIds" json:"cartIds"`
}

// OrderStat is one row of the per-category order aggregation.
type OrderStat struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

// AdminStats holds the collection counts and total revenue shown on the
// admin dashboard. MenuItem mirrors the upstream field name for the cake
// collection count.
type AdminStats struct {
	Users    int64   `json:"users"`
	MenuItem int64   `json:"menuItem"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}
