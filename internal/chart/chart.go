// Package chart turns a binary classification outcome into its
// human-readable label and a pie-chart image on shared static storage.
package chart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"phishguard/internal/logger"
	"phishguard/models"
)

// ResultFileName is the name of the shared chart image inside the static
// directory.
const ResultFileName = "result.png"

// ErrUnknownLabel is returned when a prediction outside {0, 1} reaches the
// renderer.
var ErrUnknownLabel = errors.New("unknown prediction label")

// LabelText maps a prediction to the text shown on the predict page.
func LabelText(pred models.Prediction) string {
	if pred == models.Phishing {
		return "🚨 Phishing Website"
	}
	return "✅ Legitimate Website"
}

// Renderer writes the prediction pie chart into the static directory.
//
// The chart is a single shared artifact, not per-session: concurrent
// requests from different sessions overwrite the same file and the last
// writer wins. That matches the original design and is a documented
// limitation, not a guarantee.
type Renderer struct {
	staticDir string
	logger    *logger.Logger
}

// NewRenderer constructs a Renderer writing into staticDir.
func NewRenderer(staticDir string, logger *logger.Logger) *Renderer {
	return &Renderer{staticDir: staticDir, logger: logger}
}

// ResultPath returns the full path of the shared chart image.
func (r *Renderer) ResultPath() string {
	return filepath.Join(r.staticDir, ResultFileName)
}

// Render draws a two-slice pie chart (Legitimate vs Phishing) with the
// observed class weighted 100% and writes it to the shared result file,
// overwriting any prior chart.
func (r *Renderer) Render(pred models.Prediction) error {
	if !pred.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLabel, pred)
	}

	legitimate, phishing := weights(pred)

	pie := chart.PieChart{
		Title:  "Prediction Result",
		Width:  512,
		Height: 512,
		Values: []chart.Value{
			{Value: legitimate, Label: "Legitimate"},
			{Value: phishing, Label: "Phishing"},
		},
	}

	if err := os.MkdirAll(r.staticDir, 0755); err != nil {
		return fmt.Errorf("creating static dir: %w", err)
	}

	f, err := os.Create(r.ResultPath())
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	r.logger.Debug().Int("prediction", int(pred)).Str("path", r.ResultPath()).Msg("chart rendered")

	return nil
}

// weights returns the slice weights [Legitimate, Phishing] for a label.
func weights(pred models.Prediction) (float64, float64) {
	if pred == models.Phishing {
		return 0, 1
	}
	return 1, 0
}
