package accounts

import "time"

// User is the owner of a catalog. Authentication lives outside this service;
// the JWT middleware only hands us the id.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Name     string `json:"name,omitempty"`
	Lastname string `json:"lastname,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
