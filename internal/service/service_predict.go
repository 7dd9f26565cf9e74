package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"phishguard/internal/logger"
	"phishguard/internal/ml"
	"phishguard/models"
)

// predictionService glues the feature collector to the inference pipeline.
// The collector never reorders features: the vector position of each value
// is fixed by the artifact's name list.
type predictionService struct {
	pipeline *ml.Pipeline
	logger   *logger.Logger
}

// NewPredictionService constructs a PredictionService over the loaded
// pipeline.
func NewPredictionService(pipeline *ml.Pipeline, logger *logger.Logger) PredictionService {
	return &predictionService{
		pipeline: pipeline,
		logger:   logger,
	}
}

func (p *predictionService) FeatureNames() []string {
	return p.pipeline.FeatureNames()
}

// CollectVector extracts one float per feature name from the form, in the
// exact order the scaler and model were trained with.
func (p *predictionService) CollectVector(form url.Values) ([]float64, error) {
	names := p.pipeline.FeatureNames()
	vector := make([]float64, 0, len(names))

	for _, name := range names {
		if !form.Has(name) {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
		}

		value, err := strconv.ParseFloat(form.Get(name), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, name)
		}

		vector = append(vector, value)
	}

	return vector, nil
}

// CollectVectorFromMap is the JSON API variant of CollectVector.
func (p *predictionService) CollectVectorFromMap(features map[string]float64) ([]float64, error) {
	names := p.pipeline.FeatureNames()
	vector := make([]float64, 0, len(names))

	for _, name := range names {
		value, ok := features[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
		}
		vector = append(vector, value)
	}

	return vector, nil
}

// Predict runs the scale-then-classify pipeline on the collected vector.
func (p *predictionService) Predict(ctx context.Context, vector []float64) (models.Prediction, error) {
	log := logger.FromContext(ctx)

	pred, err := p.pipeline.Predict(vector)
	if err != nil {
		log.Err(err).Int("len", len(vector)).Msg("prediction failed")
		return 0, fmt.Errorf("prediction failed: %w", err)
	}

	log.Debug().Int("prediction", int(pred)).Msg("vector classified")

	return pred, nil
}
