package mongostore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping

	"go.mongodb.org/mongo-driver/bson"  // Filters
	"go.mongodb.org/mongo-driver/mongo" // MongoDB driver

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// PaymentRepository is backed by the payments collection
type PaymentRepository struct {
	coll *mongo.Collection // payments collection
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return findAll[domain.Payment](ctx, r.coll, bson.D{{Key: "email", Value: email}}, newestFirst()) // Owner's payments, newest first
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (domain.InsertResult, error) {
	doc := *p
	doc.ID = "" // Let the driver assign an ObjectID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, doc) // Record the payment
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert payment: %w", err)
	}
	return insertedResult(res), nil
}
