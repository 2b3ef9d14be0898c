package repositories

import (
	"context"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for user data.
type UserRepositoryFacade interface {
	// SaveUser persists a new user. A duplicate email surfaces as
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
