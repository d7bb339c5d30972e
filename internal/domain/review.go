package domain

import "time"

// Review Model
type Review struct {
	ID        string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:64"`
	Name      string    `json:"name" bson:"name"`
	Details   string    `json:"details" bson:"details"`
	Rating    float64   `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" gorm:"autoCreateTime"`
}

func (Review) TableName() string { return "reviews" }
