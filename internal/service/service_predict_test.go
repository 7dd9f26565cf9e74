package service

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/config"
	"phishguard/internal/logger"
	"phishguard/internal/ml"
	"phishguard/models"
)

// newTestPredictionSvc loads a two-feature pipeline: a single stump that
// flags has_ip >= 0.5 (raw) as phishing.
func newTestPredictionSvc(t *testing.T) PredictionService {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	cfg := config.Model{
		FeatureNamesPath: write("feature_names.json", `["url_length","has_ip"]`),
		ScalerPath:       write("scaler.json", `{"mean":[50,0.5],"scale":[10,0.5]}`),
		ModelPath: write("model.json", `{
			"base_score": 0.5,
			"trees": [
				{"nodeid": 0, "split": "has_ip", "split_condition": 0,
				 "yes": 1, "no": 2, "missing": 1,
				 "children": [{"nodeid": 1, "leaf": -2.0}, {"nodeid": 2, "leaf": 2.0}]}
			]
		}`),
	}

	pipeline, err := ml.NewPipeline(cfg, logger.Nop())
	require.NoError(t, err)

	return NewPredictionService(pipeline, logger.Nop())
}

// TestCollectVector_OrderFollowsModel verifies that values are collected
// in model order regardless of form order.
func TestCollectVector_OrderFollowsModel(t *testing.T) {
	svc := newTestPredictionSvc(t)

	form := url.Values{}
	form.Set("has_ip", "1")
	form.Set("url_length", "72")

	vector, err := svc.CollectVector(form)
	require.NoError(t, err)
	assert.Equal(t, []float64{72, 1}, vector)
}

// TestCollectVector_MissingField verifies the missing-field error names
// the absent feature.
func TestCollectVector_MissingField(t *testing.T) {
	svc := newTestPredictionSvc(t)

	form := url.Values{}
	form.Set("url_length", "72")

	_, err := svc.CollectVector(form)
	require.ErrorIs(t, err, ErrMissingField)
	assert.Contains(t, err.Error(), "has_ip")
}

// TestCollectVector_InvalidNumber verifies float parse failures.
func TestCollectVector_InvalidNumber(t *testing.T) {
	svc := newTestPredictionSvc(t)

	form := url.Values{}
	form.Set("url_length", "seventy")
	form.Set("has_ip", "0")

	_, err := svc.CollectVector(form)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

// TestCollectVectorFromMap verifies the JSON API collection path.
func TestCollectVectorFromMap(t *testing.T) {
	svc := newTestPredictionSvc(t)

	vector, err := svc.CollectVectorFromMap(map[string]float64{
		"url_length": 30,
		"has_ip":     0,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 0}, vector)

	_, err = svc.CollectVectorFromMap(map[string]float64{"url_length": 30})
	assert.ErrorIs(t, err, ErrMissingField)
}

// TestPredict_EndToEnd verifies both classifications through the service.
func TestPredict_EndToEnd(t *testing.T) {
	svc := newTestPredictionSvc(t)
	ctx := context.Background()

	pred, err := svc.Predict(ctx, []float64{60, 1})
	require.NoError(t, err)
	assert.Equal(t, models.Phishing, pred)

	pred, err = svc.Predict(ctx, []float64{60, 0})
	require.NoError(t, err)
	assert.Equal(t, models.Legitimate, pred)
}

// TestPredict_ShapeMismatch verifies that a short vector surfaces the
// pipeline's shape error.
func TestPredict_ShapeMismatch(t *testing.T) {
	svc := newTestPredictionSvc(t)

	_, err := svc.Predict(context.Background(), []float64{1})
	assert.ErrorIs(t, err, ml.ErrShapeMismatch)
}

// TestFeatureNames verifies order and content.
func TestFeatureNames(t *testing.T) {
	svc := newTestPredictionSvc(t)
	assert.Equal(t, []string{"url_length", "has_ip"}, svc.FeatureNames())
}
