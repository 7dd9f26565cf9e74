package ml

import "errors"

var (
	// ErrShapeMismatch is returned when an input vector's length disagrees
	// with the feature count the artifacts were trained with.
	ErrShapeMismatch = errors.New("feature vector shape mismatch")

	// ErrBadArtifact is returned when an artifact file is present but its
	// contents are inconsistent (e.g. mean/scale length mismatch, a tree
	// split referencing an unknown feature).
	ErrBadArtifact = errors.New("malformed model artifact")
)
