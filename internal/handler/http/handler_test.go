package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phishguard/internal/chart"
	"phishguard/internal/config"
	"phishguard/internal/logger"
	"phishguard/internal/service"
	"phishguard/internal/session"
	"phishguard/internal/store"
	"phishguard/models"
)

type stubAuth struct {
	registerFn func(ctx context.Context, user models.User) error
	loginFn    func(ctx context.Context, user models.User) (models.User, error)
}

func (s *stubAuth) RegisterUser(ctx context.Context, user models.User) error {
	return s.registerFn(ctx, user)
}

func (s *stubAuth) Login(ctx context.Context, user models.User) (models.User, error) {
	return s.loginFn(ctx, user)
}

type stubPredict struct {
	names      []string
	collectFn  func(form url.Values) ([]float64, error)
	collectMap func(features map[string]float64) ([]float64, error)
	predictFn  func(ctx context.Context, vector []float64) (models.Prediction, error)
}

func (s *stubPredict) FeatureNames() []string { return s.names }

func (s *stubPredict) CollectVector(form url.Values) ([]float64, error) {
	return s.collectFn(form)
}

func (s *stubPredict) CollectVectorFromMap(features map[string]float64) ([]float64, error) {
	return s.collectMap(features)
}

func (s *stubPredict) Predict(ctx context.Context, vector []float64) (models.Prediction, error) {
	return s.predictFn(ctx, vector)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "phishguard",
		TokenDuration: time.Hour,
		SessionCookie: "phishguard_session",
	}
}

func newTestHandler(t *testing.T, auth service.AuthService, predict service.PredictionService) (*Handler, *session.Manager) {
	t.Helper()

	staticDir := t.TempDir()
	sessions := session.NewManager(testAppConfig())
	renderer := chart.NewRenderer(staticDir, logger.Nop())
	services := &service.Services{AuthService: auth, PredictionService: predict}

	h := NewHandler(services, sessions, renderer, config.Server{StaticDir: staticDir}, logger.Nop())
	return h, sessions
}

func sessionCookie(t *testing.T, sessions *session.Manager, sess session.Session) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, sessions.Write(rec, sess))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestRegisterPage(t *testing.T) {
	tests := []struct {
		name        string
		registerErr error
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "success redirects to login",
			wantStatus: http.StatusFound,
		},
		{
			name:        "duplicate login re-renders with error",
			registerErr: store.ErrLoginAlreadyExists,
			wantStatus:  http.StatusOK,
			wantBody:    "User already exists",
		},
		{
			name:        "empty fields re-render with error",
			registerErr: service.ErrInvalidDataProvided,
			wantStatus:  http.StatusOK,
			wantBody:    "Username and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &stubAuth{
				registerFn: func(_ context.Context, _ models.User) error { return tt.registerErr },
			}
			h, _ := newTestHandler(t, auth, &stubPredict{})

			form := url.Values{"username": {"alice"}, "password": {"secret"}}
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusFound {
				assert.Equal(t, "/login", rec.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestLoginPage(t *testing.T) {
	t.Run("success sets session cookie and redirects", func(t *testing.T) {
		auth := &stubAuth{
			loginFn: func(_ context.Context, user models.User) (models.User, error) {
				return user, nil
			},
		}
		h, sessions := newTestHandler(t, auth, &stubPredict{})

		form := url.Values{"username": {"alice"}, "password": {"secret"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/predict", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		sess, err := sessions.Parse(cookies[0].Value)
		require.NoError(t, err)
		assert.Equal(t, "alice", sess.User)
	})

	t.Run("wrong password re-renders with error", func(t *testing.T) {
		auth := &stubAuth{
			loginFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrWrongPassword
			},
		}
		h, _ := newTestHandler(t, auth, &stubPredict{})

		form := url.Values{"username": {"alice"}, "password": {"nope"}}
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestLogout(t *testing.T) {
	h, sessions := newTestHandler(t, &stubAuth{}, &stubPredict{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(sessionCookie(t, sessions, session.Session{User: "alice"}))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestPredictPageRequiresSession(t *testing.T) {
	h, _ := newTestHandler(t, &stubAuth{}, &stubPredict{})

	req := httptest.NewRequest(http.MethodGet, "/predict", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestPredictPage(t *testing.T) {
	names := []string{"url_length", "has_ip"}

	t.Run("get renders feature form", func(t *testing.T) {
		h, sessions := newTestHandler(t, &stubAuth{}, &stubPredict{names: names})

		req := httptest.NewRequest(http.MethodGet, "/predict", nil)
		req.AddCookie(sessionCookie(t, sessions, session.Session{User: "alice"}))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `name="url_length"`)
		assert.Contains(t, rec.Body.String(), `name="has_ip"`)
	})

	t.Run("post stores prediction in session and shows label", func(t *testing.T) {
		predict := &stubPredict{
			names: names,
			collectFn: func(_ url.Values) ([]float64, error) {
				return []float64{72, 1}, nil
			},
			predictFn: func(_ context.Context, _ []float64) (models.Prediction, error) {
				return models.Phishing, nil
			},
		}
		h, sessions := newTestHandler(t, &stubAuth{}, predict)

		form := url.Values{"url_length": {"72"}, "has_ip": {"1"}}
		req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(sessionCookie(t, sessions, session.Session{User: "alice"}))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), chart.LabelText(models.Phishing))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		sess, err := sessions.Parse(cookies[0].Value)
		require.NoError(t, err)
		last, err := sess.LastResult()
		require.NoError(t, err)
		assert.Equal(t, models.Phishing, last)
	})

	t.Run("missing field re-renders and leaves session alone", func(t *testing.T) {
		predict := &stubPredict{
			names: names,
			collectFn: func(_ url.Values) ([]float64, error) {
				return nil, service.ErrMissingField
			},
		}
		h, sessions := newTestHandler(t, &stubAuth{}, predict)

		form := url.Values{"url_length": {"72"}}
		req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(sessionCookie(t, sessions, session.Session{User: "alice"}))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Please fill in every feature field")
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestChartPage(t *testing.T) {
	t.Run("without prediction redirects to predict", func(t *testing.T) {
		h, sessions := newTestHandler(t, &stubAuth{}, &stubPredict{})

		req := httptest.NewRequest(http.MethodGet, "/chart", nil)
		req.AddCookie(sessionCookie(t, sessions, session.Session{User: "alice"}))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/predict", rec.Header().Get("Location"))
	})

	t.Run("with prediction renders the chart page", func(t *testing.T) {
		h, sessions := newTestHandler(t, &stubAuth{}, &stubPredict{})

		last := models.Legitimate
		sess := session.Session{User: "alice", LastPrediction: &last}
		req := httptest.NewRequest(http.MethodGet, "/chart", nil)
		req.AddCookie(sessionCookie(t, sessions, sess))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/static/"+chart.ResultFileName)
		assert.Contains(t, rec.Body.String(), chart.LabelText(models.Legitimate))
	})
}

func TestAPIAuth(t *testing.T) {
	h, sessions := newTestHandler(t, &stubAuth{}, &stubPredict{names: []string{"url_length"}})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/features", nil)
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid bearer token passes", func(t *testing.T) {
		token, err := sessions.Issue(session.Session{User: "alice"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/features", nil)
		req.Header.Set("Authorization", "Bearer "+token.SignedString)
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.FeaturesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"url_length"}, resp.Features)
	})
}

func TestAPILogin(t *testing.T) {
	auth := &stubAuth{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			if user.Password != "secret" {
				return models.User{}, service.ErrWrongPassword
			}
			return user, nil
		},
	}
	h, sessions := newTestHandler(t, auth, &stubPredict{})

	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		body, err := json.Marshal(models.User{Login: "alice", Password: "secret"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		authHeader := rec.Header().Get("Authorization")
		require.True(t, strings.HasPrefix(authHeader, "Bearer "))

		sess, err := sessions.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		require.NoError(t, err)
		assert.Equal(t, "alice", sess.User)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		body, err := json.Marshal(models.User{Login: "alice", Password: "nope"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Get("Authorization"))
	})
}

func TestAPIPredict(t *testing.T) {
	predict := &stubPredict{
		names: []string{"url_length"},
		collectMap: func(features map[string]float64) ([]float64, error) {
			if _, ok := features["url_length"]; !ok {
				return nil, service.ErrMissingField
			}
			return []float64{features["url_length"]}, nil
		},
		predictFn: func(_ context.Context, _ []float64) (models.Prediction, error) {
			return models.Legitimate, nil
		},
	}
	h, sessions := newTestHandler(t, &stubAuth{}, predict)

	token, err := sessions.Issue(session.Session{User: "alice"})
	require.NoError(t, err)

	t.Run("classifies a feature map", func(t *testing.T) {
		body, err := json.Marshal(models.PredictRequest{Features: map[string]float64{"url_length": 12}})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token.SignedString)
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.PredictResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, models.Legitimate, resp.Prediction)
		assert.Equal(t, chart.LabelText(models.Legitimate), resp.Label)
	})

	t.Run("missing feature is a bad request", func(t *testing.T) {
		body, err := json.Marshal(models.PredictRequest{Features: map[string]float64{}})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/predict", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token.SignedString)
		rec := httptest.NewRecorder()

		h.Init().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
