package domain

import "time"

// MenuItem Model
type MenuItem struct {
	ID        string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:64"`                          // Primary key
	Name      string    `json:"name" bson:"name"`                                                          // Dish name
	Category  string    `json:"category" bson:"category" gorm:"index;size:64"`                             // Category used by order stats
	Price     float64   `json:"price" bson:"price"`                                                        // Unit price
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`                                    // Image URL
	Recipe    string    `json:"recipe,omitempty" bson:"recipe,omitempty"`                                  // Description
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" gorm:"autoCreateTime;index"` // Creation time, drives newest-first order
}

// TableName keeps the SQL table aligned with the document collection
func (MenuItem) TableName() string { return "menu" }
