package domain

import "time"

// PaymentStatusPending is assigned when the client sends no status
const PaymentStatusPending = "pending"

// Payment Model, a settled order
type Payment struct {
	ID            string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:64"`
	Email         string    `json:"email" bson:"email" gorm:"index;size:255"`
	Price         float64   `json:"price" bson:"price"`
	TransactionID string    `json:"transactionId" bson:"transactionId" gorm:"column:transaction_id;size:255"`
	Date          time.Time `json:"date" bson:"date"`
	CartIDs       []string  `json:"cartIds" bson:"cartIds" gorm:"column:cart_ids;serializer:json;type:text"`
	MenuItemIDs   []string  `json:"menuItemIds" bson:"menuItemIds" gorm:"column:menu_item_ids;serializer:json;type:text"` // Repeats allowed
	Status        string    `json:"status" bson:"status" gorm:"size:32"`
	CreatedAt     time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" gorm:"autoCreateTime;index"` // Drives history order
}

// TableName keeps the SQL table aligned with the document collection
func (Payment) TableName() string { return "payments" }
