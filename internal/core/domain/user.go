package domain

import "time"

// User represents a registered customer. The ledger core only consumes the
// UserID for ownership checks at account creation.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
