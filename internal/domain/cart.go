package domain

import "time"

// CartEntry Model, one menu item in a user's cart with a price snapshot
type CartEntry struct {
	ID        string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:64"`                   // Primary key
	MenuID    string    `json:"menuId" bson:"menuId" gorm:"column:menu_id;size:64"`                 // Referenced menu item
	Email     string    `json:"email" bson:"email" gorm:"index;size:255"`                           // Owner email
	Name      string    `json:"name" bson:"name"`                                                   // Item name snapshot
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`                             // Item image snapshot
	Price     float64   `json:"price" bson:"price"`                                                 // Price snapshot
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" gorm:"autoCreateTime"` // Creation time
}

// TableName keeps the SQL table aligned with the document collection
func (CartEntry) TableName() string { return "carts" }
