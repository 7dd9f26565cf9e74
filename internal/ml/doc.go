// Package ml loads the pre-trained inference artifacts (ordered feature
// names, fitted scaler, gradient-boosted tree classifier) and exposes the
// prediction pipeline built from them.
//
// Artifacts are immutable after loading and safe for concurrent use; the
// pipeline is a pure function of its input vector. There is no training,
// updating, or validation of artifact quality at runtime.
package ml
