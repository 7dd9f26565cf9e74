package models

// Request and response bodies for the JSON API surface consumed by the
// terminal client (cmd/client).

// PredictRequest carries one value per feature name expected by the model.
type PredictRequest struct {
	Features map[string]float64 `json:"features"`
}

// PredictResponse is the JSON API classification result.
type PredictResponse struct {
	Prediction Prediction `json:"prediction"`
	Label      string     `json:"label"`
}

// FeaturesResponse lists the feature names in the exact order expected by
// the trained model.
type FeaturesResponse struct {
	Features []string `json:"features"`
}
