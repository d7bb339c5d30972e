// Package mongostore implements the store repositories on MongoDB.
package mongostore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping
	"time"    // Timestamps

	"go.mongodb.org/mongo-driver/bson"           // Filters and documents
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Find and index options

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
	"github.com/Rasel9360/bistro-boss-server/internal/store"  // Repository interfaces
)

// Collection names
const (
	UsersCollection    = "users"
	MenuCollection     = "menu"
	ReviewsCollection  = "reviews"
	CartsCollection    = "carts"
	PaymentsCollection = "payments"
)

// New wires every repository to collections of db
func New(db *mongo.Database) store.Store {
	users := db.Collection(UsersCollection)       // Shared with stats
	menu := db.Collection(MenuCollection)         // Shared with stats
	payments := db.Collection(PaymentsCollection) // Shared with stats
	return store.Store{
		Users:    &UserRepository{coll: users},
		Menu:     &MenuRepository{coll: menu},
		Reviews:  &ReviewRepository{coll: db.Collection(ReviewsCollection)},
		Carts:    &CartRepository{coll: db.Collection(CartsCollection)},
		Payments: &PaymentRepository{coll: payments},
		Stats:    &StatsRepository{users: users, menu: menu, payments: payments},
	}
}

// EnsureIndexes creates the unique email index backing insert-if-absent.
// It is idempotent and runs at server startup as well as from cmd/migrate.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id) // Only 24-char hex is accepted
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(ids))
	// Fail on the first malformed id
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

func insertedResult(res *mongo.InsertOneResult) domain.InsertResult {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return domain.Inserted(oid.Hex())
	}
	return domain.Inserted(fmt.Sprint(res.InsertedID)) // Non-ObjectID keys as-is
}

func updateResult(res *mongo.UpdateResult) domain.UpdateResult {
	out := domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
		hex := oid.Hex()
		out.UpsertedID = &hex
	}
	return out
}

func deleteResult(res *mongo.DeleteResult) domain.DeleteResult {
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// findAll runs a find and decodes every document, never returning a nil slice
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...) // Run the query
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	out := []T{} // Encode empty results as []
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

// newestFirst sorts by _id, whose ObjectID prefix is the insert time
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
}

func now() time.Time { return time.Now().UTC() }
