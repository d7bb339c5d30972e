package mongostore

import (
	"context" // Request-scoped deadlines
	"errors"  // Sentinel comparison
	"fmt"     // Error wrapping

	"go.mongodb.org/mongo-driver/bson"  // Filters and updates
	"go.mongodb.org/mongo-driver/mongo" // MongoDB driver

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// UserRepository is backed by the users collection
type UserRepository struct {
	coll *mongo.Collection // users collection
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, r.coll, bson.D{}) // Every user
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u) // Lookup by unique email
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) InsertIfAbsent(ctx context.Context, u *domain.User) (domain.InsertResult, error) {
	_, err := r.FindByEmail(ctx, u.Email)
	if err == nil {
		return domain.AlreadyExists(), nil // Already registered
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.InsertResult{}, err
	}
	doc := *u
	doc.ID = "" // Let the driver assign an ObjectID
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now()
	}
	res, err := r.coll.InsertOne(ctx, doc) // Insert the new user
	// A concurrent sign-in won the race on the unique index
	if mongo.IsDuplicateKeyError(err) {
		return domain.AlreadyExists(), nil
	}
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return insertedResult(res), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := objectID(id) // Parse the hex id
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}) // Remove the user
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}
	return deleteResult(res), nil
}

func (r *UserRepository) MakeAdmin(ctx context.Context, id string) (domain.UpdateResult, error) {
	oid, err := objectID(id) // Parse the hex id
	if err != nil {
		return domain.UpdateResult{}, err
	}
	// Set the role; an existing admin reports zero modified
	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: domain.RoleAdmin}}}},
	)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("promote user: %w", err)
	}
	return updateResult(res), nil
}
