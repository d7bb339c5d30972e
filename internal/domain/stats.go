package domain

import "sort"

// PaymentStats is the admin dashboard summary
type PaymentStats struct {
	Users        int64   `json:"users"`        // Approximate user count
	MenuItems    int64   `json:"menuItems"`    // Approximate menu item count
	Orders       int64   `json:"orders"`       // Approximate payment count
	TotalRevenue float64 `json:"totalRevenue"` // Sum of payment prices
}

// CategoryStat is one row of the order breakdown
type CategoryStat struct {
	Category string  `json:"category" bson:"category"`
	Quantity int64   `json:"quantity" bson:"quantity"`
	Revenue  float64 `json:"revenue" bson:"revenue"`
}

// BreakdownByCategory resolves every menu item id occurrence across payments
// against menu and groups the hits by category. Ids missing from menu are
// skipped. Rows come back sorted by category.
func BreakdownByCategory(menuItemIDs [][]string, menu map[string]MenuItem) []CategoryStat {
	byCategory := map[string]*CategoryStat{}
	for _, ids := range menuItemIDs {
		for _, id := range ids {
			item, ok := menu[id]
			if !ok {
				continue
			}
			row, ok := byCategory[item.Category]
			if !ok {
				row = &CategoryStat{Category: item.Category}
				byCategory[item.Category] = row
			}
			row.Quantity++
			row.Revenue += item.Price
		}
	}
	out := make([]CategoryStat, 0, len(byCategory))
	for _, row := range byCategory {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
