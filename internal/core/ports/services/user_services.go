package services

import (
	"context"

	"github.com/prsahoo/bank_ledger_app/internal/core/domain"
	"github.com/prsahoo/bank_ledger_app/internal/dto"
)

// UserSvcFacade covers user registration, credential verification, and the
// read-only directory lookup the ledger engine uses to validate ownership.
type UserSvcFacade interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// AuthenticateUser verifies email+password and returns the user on success.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
