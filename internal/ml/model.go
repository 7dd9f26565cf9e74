package ml

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Ensemble is a gradient-boosted binary classifier loaded from the JSON
// dump the training pipeline exports (xgboost `dump_model` tree format
// wrapped with the base score). Each tree contributes a leaf margin; the
// summed margin is squashed through a sigmoid and thresholded at 0.5.
type Ensemble struct {
	trees      []treeNode
	baseMargin float64
	features   map[string]int
}

// treeNode mirrors one node of the xgboost JSON tree dump. Interior nodes
// carry a split and children; leaves carry only the leaf value.
type treeNode struct {
	NodeID         int        `json:"nodeid"`
	Split          string     `json:"split,omitempty"`
	SplitCondition float64    `json:"split_condition"`
	Yes            int        `json:"yes"`
	No             int        `json:"no"`
	Missing        int        `json:"missing"`
	Leaf           *float64   `json:"leaf,omitempty"`
	Children       []treeNode `json:"children,omitempty"`
}

type modelDump struct {
	BaseScore *float64   `json:"base_score"`
	Trees     []treeNode `json:"trees"`
}

// LoadModel reads and validates the classifier artifact. featureNames
// supplies the positional feature contract: splits may reference features
// either by name or by xgboost's "f<index>" shorthand.
func LoadModel(path string, featureNames []string) (*Ensemble, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading model: %w", err)
	}

	var dump modelDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("error decoding model: %w", err)
	}

	if len(dump.Trees) == 0 {
		return nil, fmt.Errorf("%w: model has no trees", ErrBadArtifact)
	}

	base := 0.5
	if dump.BaseScore != nil {
		base = *dump.BaseScore
	}
	if base <= 0 || base >= 1 {
		return nil, fmt.Errorf("%w: base score %v outside (0, 1)", ErrBadArtifact, base)
	}

	features := make(map[string]int, len(featureNames))
	for i, name := range featureNames {
		features[name] = i
	}

	e := &Ensemble{
		trees:      dump.Trees,
		baseMargin: math.Log(base / (1 - base)),
		features:   features,
	}

	for i := range e.trees {
		if err := e.validateTree(&e.trees[i], len(featureNames)); err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
	}

	return e, nil
}

// NumFeatures returns the number of features the ensemble was trained on.
func (e *Ensemble) NumFeatures() int {
	return len(e.features)
}

// Predict returns 1 (phishing) when the ensemble's probability estimate for
// the scaled input vector reaches 0.5, and 0 (legitimate) otherwise.
//
// Returns ErrShapeMismatch if the vector length disagrees with the trained
// feature count.
func (e *Ensemble) Predict(scaled []float64) (int, error) {
	p, err := e.Score(scaled)
	if err != nil {
		return 0, err
	}

	if p >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// Score returns the ensemble's probability estimate in [0, 1].
func (e *Ensemble) Score(scaled []float64) (float64, error) {
	if len(scaled) != len(e.features) {
		return 0, fmt.Errorf("%w: got %d features, model expects %d",
			ErrShapeMismatch, len(scaled), len(e.features))
	}

	margin := e.baseMargin
	for i := range e.trees {
		leaf, err := e.evaluate(&e.trees[i], scaled)
		if err != nil {
			return 0, err
		}
		margin += leaf
	}

	return 1 / (1 + math.Exp(-margin)), nil
}

// evaluate descends one tree to its leaf for the given vector.
// xgboost convention: the "yes" branch is taken when value < condition.
func (e *Ensemble) evaluate(n *treeNode, vector []float64) (float64, error) {
	for n.Leaf == nil {
		idx, err := e.featureIndex(n.Split)
		if err != nil {
			return 0, err
		}

		next := n.No
		if vector[idx] < n.SplitCondition {
			next = n.Yes
		}

		child := childByID(n, next)
		if child == nil {
			return 0, fmt.Errorf("%w: node %d has no child %d", ErrBadArtifact, n.NodeID, next)
		}
		n = child
	}

	return *n.Leaf, nil
}

func (e *Ensemble) featureIndex(split string) (int, error) {
	if idx, ok := e.features[split]; ok {
		return idx, nil
	}

	// xgboost dumps without feature names use "f<index>"
	if strings.HasPrefix(split, "f") {
		if idx, err := strconv.Atoi(split[1:]); err == nil && idx >= 0 && idx < len(e.features) {
			return idx, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown split feature %q", ErrBadArtifact, split)
}

func childByID(n *treeNode, id int) *treeNode {
	for i := range n.Children {
		if n.Children[i].NodeID == id {
			return &n.Children[i]
		}
	}
	return nil
}

// validateTree walks the tree once at load time so Predict never has to
// fail on structural problems mid-request.
func (e *Ensemble) validateTree(n *treeNode, numFeatures int) error {
	if n.Leaf != nil {
		return nil
	}

	if _, err := e.featureIndex(n.Split); err != nil {
		return err
	}

	for _, id := range []int{n.Yes, n.No} {
		child := childByID(n, id)
		if child == nil {
			return fmt.Errorf("%w: node %d has no child %d", ErrBadArtifact, n.NodeID, id)
		}
		if err := e.validateTree(child, numFeatures); err != nil {
			return err
		}
	}

	return nil
}
