package http

import (
	"errors"
	"net/http"

	"phishguard/internal/chart"
	"phishguard/internal/logger"
	"phishguard/internal/service"
)

// predictPage renders the feature form and, on POST, runs the classifier.
// A successful prediction is stored back into the session cookie so the
// chart page can find it; input errors re-render the form and leave the
// session untouched.
func (h *Handler) predictPage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	data := pageData{
		User:     sess.User,
		Features: h.services.PredictionService.FeatureNames(),
	}

	if r.Method != http.MethodPost {
		h.renderPage(w, r, "predict.html", data)
		return
	}

	if err := r.ParseForm(); err != nil {
		data.Error = "Invalid form submission"
		h.renderPage(w, r, "predict.html", data)
		return
	}

	vector, err := h.services.PredictionService.CollectVector(r.PostForm)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField):
			data.Error = "Please fill in every feature field"
		case errors.Is(err, service.ErrInvalidNumber):
			data.Error = "Every feature must be a number"
		default:
			data.Error = "Invalid form submission"
		}
		h.renderPage(w, r, "predict.html", data)
		return
	}

	pred, err := h.services.PredictionService.Predict(r.Context(), vector)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("prediction failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sess.SetLastResult(pred)
	if err := h.sessions.Write(w, sess); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to refresh session cookie")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data.Result = chart.LabelText(pred)
	h.renderPage(w, r, "predict.html", data)
}
