package store

import "errors"

var (
	// ErrLoginAlreadyExists is returned on registration when the login is
	// already taken. The first registration stays untouched.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a login lookup matches no account.
	ErrNoUserWasFound = errors.New("no user was found")
)
