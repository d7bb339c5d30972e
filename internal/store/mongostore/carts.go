package mongostore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping

	"go.mongodb.org/mongo-driver/bson"  // Filters
	"go.mongodb.org/mongo-driver/mongo" // MongoDB driver

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// CartRepository is backed by the carts collection
type CartRepository struct {
	coll *mongo.Collection // carts collection
}

func (r *CartRepository) List(ctx context.Context, email string) ([]domain.CartEntry, error) {
	filter := bson.D{} // Every entry when no owner is given
	if email != "" {
		filter = bson.D{{Key: "email", Value: email}} // Only the owner's entries
	}
	return findAll[domain.CartEntry](ctx, r.coll, filter)
}

func (r *CartRepository) Insert(ctx context.Context, entry *domain.CartEntry) (domain.InsertResult, error) {
	doc := *entry
	doc.ID = "" // Let the driver assign an ObjectID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, doc) // Insert the cart entry
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert cart entry: %w", err)
	}
	return insertedResult(res), nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := objectID(id) // Parse the hex id
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}) // Remove the entry
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete cart entry: %w", err)
	}
	return deleteResult(res), nil
}

// ValidateIDs rejects any id that is not ObjectID hex
func (r *CartRepository) ValidateIDs(ids []string) error {
	_, err := objectIDs(ids)
	return err
}

func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) (domain.DeleteResult, error) {
	if len(ids) == 0 {
		return domain.DeleteResult{Acknowledged: true}, nil // Nothing to settle
	}
	oids, err := objectIDs(ids) // Parse every hex id up front
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.coll.DeleteMany(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}}) // Remove settled entries
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete cart entries: %w", err)
	}
	return deleteResult(res), nil
}
