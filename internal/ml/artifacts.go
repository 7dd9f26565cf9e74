package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFeatureNames reads the ordered feature-name list the model was
// trained with. The order is an external contract from the training
// pipeline: the scaler and the classifier index features by position.
func LoadFeatureNames(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading feature names: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("error decoding feature names: %w", err)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty feature name list", ErrBadArtifact)
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty feature name", ErrBadArtifact)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate feature name %q", ErrBadArtifact, name)
		}
		seen[name] = struct{}{}
	}

	return names, nil
}
