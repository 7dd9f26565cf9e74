package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler is the pre-fit standard scaler exported by the training pipeline.
// Transform subtracts the per-feature mean and divides by the per-feature
// scale, exactly as fixed at training time.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadScaler reads and validates the scaler artifact.
func LoadScaler(path string) (*Scaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading scaler: %w", err)
	}

	var s Scaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("error decoding scaler: %w", err)
	}

	if len(s.Mean) == 0 || len(s.Mean) != len(s.Scale) {
		return nil, fmt.Errorf("%w: scaler mean/scale length mismatch (%d vs %d)",
			ErrBadArtifact, len(s.Mean), len(s.Scale))
	}

	for i, sc := range s.Scale {
		if sc == 0 {
			return nil, fmt.Errorf("%w: zero scale for feature %d", ErrBadArtifact, i)
		}
	}

	return &s, nil
}

// Len returns the number of features the scaler was fit on.
func (s *Scaler) Len() int {
	return len(s.Mean)
}

// Transform returns a new vector with each feature standardized as
// (v[i] - mean[i]) / scale[i]. The input is not modified.
//
// Returns ErrShapeMismatch if len(vector) differs from the fitted feature
// count.
func (s *Scaler) Transform(vector []float64) ([]float64, error) {
	if len(vector) != len(s.Mean) {
		return nil, fmt.Errorf("%w: got %d features, scaler expects %d",
			ErrShapeMismatch, len(vector), len(s.Mean))
	}

	scaled := make([]float64, len(vector))
	for i, v := range vector {
		scaled[i] = (v - s.Mean[i]) / s.Scale[i]
	}

	return scaled, nil
}
