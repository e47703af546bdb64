package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`              // Primary key
	Email     string    `gorm:"uniqueIndex;not null" json:"email"` // Unique email address
	FullName  *string   `json:"full_name"`                         // Optional display name
	CreatedAt time.Time `json:"created_at"`                        // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                        // Set at creation; no update endpoint exists
}

// TableName overrides the default table name
func (User) TableName() string {
	return "users"
}
