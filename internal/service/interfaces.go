package service

import (
	"context"
	"net/url"

	"phishguard/models"
)

// AuthService handles account registration and credential verification
// against the injected credential store.
type AuthService interface {
	// RegisterUser creates a new account. Fails with
	// store.ErrLoginAlreadyExists on a duplicate login and
	// ErrInvalidDataProvided on empty fields.
	RegisterUser(ctx context.Context, user models.User) error

	// Login verifies the submitted credentials. Fails with
	// store.ErrNoUserWasFound or ErrWrongPassword on mismatch.
	Login(ctx context.Context, user models.User) (models.User, error)
}

// PredictionService collects feature vectors in model order and runs the
// inference pipeline.
type PredictionService interface {
	// FeatureNames returns the ordered feature-name list the model was
	// trained with.
	FeatureNames() []string

	// CollectVector extracts one float per feature name from a submitted
	// form, in model order. Fails with ErrMissingField or ErrInvalidNumber.
	CollectVector(form url.Values) ([]float64, error)

	// CollectVectorFromMap is CollectVector for the JSON API's feature map.
	CollectVectorFromMap(features map[string]float64) ([]float64, error)

	// Predict scales and classifies the vector.
	Predict(ctx context.Context, vector []float64) (models.Prediction, error)
}
