package mongostore

import (
	"context" // Request-scoped deadlines
	"fmt"     // Error wrapping

	"go.mongodb.org/mongo-driver/bson"  // Pipeline stages
	"go.mongodb.org/mongo-driver/mongo" // MongoDB driver

	"github.com/Rasel9360/bistro-boss-server/internal/domain" // Importing domain models
)

// StatsRepository aggregates over payments and menu
type StatsRepository struct {
	users    *mongo.Collection // users collection
	menu     *mongo.Collection // menu collection
	payments *mongo.Collection // payments collection
}

// Summary uses estimated counts, so totals may lag concurrent writes
func (r *StatsRepository) Summary(ctx context.Context) (domain.PaymentStats, error) {
	var stats domain.PaymentStats
	var err error
	if stats.Users, err = r.users.EstimatedDocumentCount(ctx); err != nil {
		return stats, fmt.Errorf("count users: %w", err)
	}
	if stats.MenuItems, err = r.menu.EstimatedDocumentCount(ctx); err != nil {
		return stats, fmt.Errorf("count menu: %w", err)
	}
	if stats.Orders, err = r.payments.EstimatedDocumentCount(ctx); err != nil {
		return stats, fmt.Errorf("count payments: %w", err)
	}

	cur, err := r.payments.Aggregate(ctx, revenuePipeline()) // Sum of all payment prices
	if err != nil {
		return stats, fmt.Errorf("aggregate revenue: %w", err)
	}
	var rows []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return stats, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) > 0 { // No payments leaves revenue at 0
		stats.TotalRevenue = rows[0].TotalRevenue
	}
	return stats, nil
}

func (r *StatsRepository) OrderStats(ctx context.Context) ([]domain.CategoryStat, error) {
	cur, err := r.payments.Aggregate(ctx, orderStatsPipeline()) // Join payments to menu by item id
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	out := []domain.CategoryStat{} // Encode empty results as []
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}
	return out, nil
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// orderStatsPipeline unwinds menuItemIds and joins them to menu by _id.
// Ids are compared as strings so both ObjectID and string keys resolve.
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}}, // One row per ordered item
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: MenuCollection},
			{Key: "let", Value: bson.D{{Key: "itemId", Value: "$menuItemIds"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{
						bson.D{{Key: "$toString", Value: "$_id"}},
						bson.D{{Key: "$toString", Value: "$$itemId"}},
					}},
				}}}}},
			}},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}}, // Drops ids with no menu match
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"}, // Per category
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
	}
}
