package ml

import (
	"fmt"

	"phishguard/internal/config"
	"phishguard/internal/logger"
	"phishguard/models"
)

// Pipeline combines the three startup artifacts into the scale-then-classify
// function invoked per predict request. It holds no mutable state and is
// safe to share across all requests.
type Pipeline struct {
	names  []string
	scaler *Scaler
	model  *Ensemble
}

// NewPipeline loads all artifacts from the configured paths and verifies
// that they agree on the feature count. Any failure here is fatal for the
// server: there is no partial-service mode without a working model.
func NewPipeline(cfg config.Model, log *logger.Logger) (*Pipeline, error) {
	names, err := LoadFeatureNames(cfg.FeatureNamesPath)
	if err != nil {
		return nil, fmt.Errorf("loading feature names: %w", err)
	}

	scaler, err := LoadScaler(cfg.ScalerPath)
	if err != nil {
		return nil, fmt.Errorf("loading scaler: %w", err)
	}
	if scaler.Len() != len(names) {
		return nil, fmt.Errorf("%w: scaler fit on %d features, name list has %d",
			ErrBadArtifact, scaler.Len(), len(names))
	}

	model, err := LoadModel(cfg.ModelPath, names)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}

	log.Info().
		Int("features", len(names)).
		Str("model", cfg.ModelPath).
		Msg("inference artifacts loaded")

	return &Pipeline{names: names, scaler: scaler, model: model}, nil
}

// FeatureNames returns a copy of the ordered feature-name list.
func (p *Pipeline) FeatureNames() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Predict applies the pre-fit scaler transform and feeds the result into
// the classifier, producing a binary label. Pure function of its input and
// the immutable artifacts.
//
// Returns ErrShapeMismatch if the vector length disagrees with the
// expected feature count.
func (p *Pipeline) Predict(vector []float64) (models.Prediction, error) {
	if len(vector) != len(p.names) {
		return 0, fmt.Errorf("%w: got %d features, expected %d",
			ErrShapeMismatch, len(vector), len(p.names))
	}

	scaled, err := p.scaler.Transform(vector)
	if err != nil {
		return 0, err
	}

	label, err := p.model.Predict(scaled)
	if err != nil {
		return 0, err
	}

	return models.Prediction(label), nil
}
