package session

import "errors"

var (
	// ErrNoSession indicates an absent, expired, or tampered session token.
	// The bearer is treated as anonymous.
	ErrNoSession = errors.New("no valid session")

	// ErrNoResult indicates that no prediction has been made in this
	// session yet.
	ErrNoResult = errors.New("no prediction result available")
)
