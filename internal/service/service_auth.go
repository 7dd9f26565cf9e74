package service

import (
	"context"
	"fmt"

	"phishguard/internal/logger"
	"phishguard/internal/store"
	"phishguard/models"
)

// authService is the concrete implementation of AuthService. Passwords are
// compared exactly as stored; hashing is deliberately out of scope for
// this system (see DESIGN.md) and would live here if added.
type authService struct {
	credentials store.CredentialStore
	logger      *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given credential
// store. The returned service is safe for concurrent use.
func NewAuthService(credentials store.CredentialStore, logger *logger.Logger) AuthService {
	return &authService{
		credentials: credentials,
		logger:      logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the store call fails (login already
//     taken yields store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return ErrInvalidDataProvided
	}

	if err := a.credentials.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	return nil
}

// Login authenticates an existing user by exact match of login and
// password.
//
// Returns the stored user record or:
//   - ErrInvalidDataProvided if Login or Password is empty.
//   - A wrapped storage error if the lookup fails (unknown login yields
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the passwords do not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.credentials.FindUserByLogin(ctx, user.Login)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if foundUser.Password != user.Password {
		log.Error().Str("login", user.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}
