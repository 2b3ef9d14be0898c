package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account. Only ACTIVE is produced
// by current flows; the remaining states are reserved.
type AccountStatus string

const (
	StatusActive AccountStatus = "ACTIVE"
	StatusFrozen AccountStatus = "FROZEN"
	StatusClosed AccountStatus = "CLOSED"
)

// DefaultAccountType is used when account creation does not name a type.
const DefaultAccountType = "Savings"

// Account represents a customer bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID     string          `json:"accountID"`     // Primary Key (UUID)
	UserID        string          `json:"userID"`        // Owning user, set once at creation
	AccountNumber string          `json:"accountNumber"` // Unique, assigned at creation
	AccountType   string          `json:"accountType"`   // Free-form label, e.g. "Savings"
	Balance       decimal.Decimal `json:"balance"`       // Invariant: never negative
	Status        AccountStatus   `json:"status"`
	OpenedAt      time.Time       `json:"openedAt"`
}
