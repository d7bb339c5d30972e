package mongostore

import (
	"context" // Request-scoped deadlines
	"errors"  // Sentinel comparison
	"fmt"     // Error wrapping

	"go.mongodb.org/mongo-driver/bson"          // Filters and updates
	"go.mongodb.org/mongo-driver/mongo"         // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options" // Upsert option

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// MenuRepository is backed by the menu collection
type MenuRepository struct {
	coll *mongo.Collection // menu collection
}

func (r *MenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	return findAll[domain.MenuItem](ctx, r.coll, bson.D{}, newestFirst()) // Newest first
}

func (r *MenuRepository) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := objectID(id) // Parse the hex id
	if err != nil {
		return nil, err
	}
	var item domain.MenuItem
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&item) // Fetch a single item
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	doc := *item
	doc.ID = "" // Let the driver assign an ObjectID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, doc) // Insert the menu item
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert menu item: %w", err)
	}
	return insertedResult(res), nil
}

func (r *MenuRepository) Upsert(ctx context.Context, id string, item *domain.MenuItem) (domain.UpdateResult, error) {
	oid, err := objectID(id) // Parse the hex id
	if err != nil {
		return domain.UpdateResult{}, err
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "name", Value: item.Name},
			{Key: "category", Value: item.Category},
			{Key: "price", Value: item.Price},
			{Key: "image", Value: item.Image},
			{Key: "recipe", Value: item.Recipe},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now()}}}, // Only on creation
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update, options.Update().SetUpsert(true)) // Create when absent
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("upsert menu item: %w", err)
	}
	return updateResult(res), nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := objectID(id) // Parse the hex id
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}) // Remove the item
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete menu item: %w", err)
	}
	return deleteResult(res), nil
}

// ReviewRepository is backed by the reviews collection
type ReviewRepository struct {
	coll *mongo.Collection // reviews collection
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	return findAll[domain.Review](ctx, r.coll, bson.D{}) // Every review
}
