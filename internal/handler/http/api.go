package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"phishguard/internal/chart"
	"phishguard/internal/logger"
	"phishguard/internal/service"
	"phishguard/internal/session"
	"phishguard/internal/store"
	"phishguard/models"
)

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(payload)
}

// apiRegister creates an account from a JSON body and, like apiLogin,
// answers with a bearer token in the Authorization header.
func (h *Handler) apiRegister(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.RegisterUser(r.Context(), user)
	switch {
	case err == nil:
		h.issueToken(w, r, user.Login)
	case errors.Is(err, store.ErrLoginAlreadyExists):
		http.Error(w, "user already exists", http.StatusConflict)
	case errors.Is(err, service.ErrInvalidDataProvided):
		http.Error(w, "login and password are required", http.StatusBadRequest)
	default:
		logger.FromRequest(r).Err(err).Msg("registration failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// apiLogin verifies JSON credentials and answers with a bearer token.
func (h *Handler) apiLogin(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	verified, err := h.services.AuthService.Login(r.Context(), user)
	switch {
	case err == nil:
		h.issueToken(w, r, verified.Login)
	case errors.Is(err, store.ErrNoUserWasFound),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrInvalidDataProvided):
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	default:
		logger.FromRequest(r).Err(err).Msg("login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, login string) {
	token, err := h.sessions.Issue(session.Session{User: login})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to issue session token")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	w.WriteHeader(http.StatusOK)
}

// apiFeatures returns the ordered feature-name list expected by apiPredict.
func (h *Handler) apiFeatures(w http.ResponseWriter, r *http.Request) {
	resp := models.FeaturesResponse{
		Features: h.services.PredictionService.FeatureNames(),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response")
	}
}

// apiPredict classifies a JSON feature map.
func (h *Handler) apiPredict(w http.ResponseWriter, r *http.Request) {
	var req models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vector, err := h.services.PredictionService.CollectVectorFromMap(req.Features)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingField), errors.Is(err, service.ErrInvalidNumber):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			logger.FromRequest(r).Err(err).Msg("feature collection failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	pred, err := h.services.PredictionService.Predict(r.Context(), vector)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("prediction failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp := models.PredictResponse{
		Prediction: pred,
		Label:      chart.LabelText(pred),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response")
	}
}
