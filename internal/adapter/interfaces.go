// Package adapter provides the transport layer the terminal client uses to
// talk to the classifier server.
//
// The primary abstraction is [ServerAdapter], which decouples the client UI
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"phishguard/models"
)

// ServerAdapter defines transport-agnostic communication with the
// classifier server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called automatically after a successful
	// Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates an account with the provided credentials. On
	// success it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) error

	// Login authenticates with the server. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) error

	// FeatureNames fetches the ordered feature-name list the model
	// expects. Requires a prior Register or Login.
	FeatureNames(ctx context.Context) ([]string, error)

	// Predict classifies the given feature map. Requires a prior Register
	// or Login.
	Predict(ctx context.Context, features map[string]float64) (models.PredictResponse, error)
}
