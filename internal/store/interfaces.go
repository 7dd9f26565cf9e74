package store

import (
	"context"

	"phishguard/models"
)

// CredentialStore holds username/password pairs. Implementations must keep
// logins unique; accounts are never updated or deleted.
//
// The store is an injectable abstraction so the in-memory demo backend can
// be swapped for a persistent one without touching routing logic.
type CredentialStore interface {
	// CreateUser inserts a new account. Returns ErrLoginAlreadyExists if
	// the login is taken.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByLogin returns the stored account for a login, or
	// ErrNoUserWasFound.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}
