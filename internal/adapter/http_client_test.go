package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/config"
	"phishguard/internal/logger"
	"phishguard/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL}, logger.Nop())
	return a.(*httpServerAdapter)
}

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/user/register", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "alice", user.Login)

		w.Header().Set("Authorization", "Bearer test-token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "test-token", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("user already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.User{Login: "alice", Password: "nope"})

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestFeatureNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/features", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(models.FeaturesResponse{
			Features: []string{"url_length", "has_ip"},
		}))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	names, err := a.FeatureNames(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"url_length", "has_ip"}, names)
}

func TestPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/predict", r.URL.Path)

		var req models.PredictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 72.0, req.Features["url_length"])

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(models.PredictResponse{
			Prediction: models.Phishing,
			Label:      "🚨 Phishing Website",
		}))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("test-token")

	resp, err := a.Predict(context.Background(), map[string]float64{"url_length": 72, "has_ip": 1})

	require.NoError(t, err)
	assert.Equal(t, models.Phishing, resp.Prediction)
	assert.Equal(t, "🚨 Phishing Website", resp.Label)
}

func TestPredict_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Predict(context.Background(), map[string]float64{"url_length": 72})

	require.ErrorIs(t, err, ErrUnauthorized)
}
