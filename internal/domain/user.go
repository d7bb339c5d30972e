package domain

import "time"

// RoleAdmin is the only role value the guards recognise
const RoleAdmin = "admin"

// User Model
type User struct {
	ID        string    `json:"_id" bson:"_id,omitempty" gorm:"primaryKey;size:64"`                   // Primary key
	Email     string    `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`            // Unique email, the identity claim
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`                               // Display name
	Photo     string    `json:"photo,omitempty" bson:"photo,omitempty"`                             // Avatar URL
	Role      string    `json:"role,omitempty" bson:"role,omitempty" gorm:"size:32"`                // Role: empty or admin
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty" gorm:"autoCreateTime"` // Creation time
}

// TableName keeps the SQL table aligned with the document collection
func (User) TableName() string { return "users" }

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
