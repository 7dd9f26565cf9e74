package models

// Prediction is the binary outcome produced by the inference pipeline.
type Prediction int

const (
	// Legitimate marks a website classified as safe.
	Legitimate Prediction = 0
	// Phishing marks a website classified as a phishing site.
	Phishing Prediction = 1
)

// Valid reports whether p is one of the two known labels.
func (p Prediction) Valid() bool {
	return p == Legitimate || p == Phishing
}
