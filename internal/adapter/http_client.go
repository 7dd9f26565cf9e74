package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"phishguard/internal/config"
	"phishguard/internal/logger"
	"phishguard/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter builds the HTTP/REST implementation of
// [ServerAdapter] against the configured server address.
func NewHTTPServerAdapter(cfg config.Adapter, log *logger.Logger) ServerAdapter {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.HTTPAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: log}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) FeatureNames(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/api/features")
	if err != nil {
		return nil, fmt.Errorf("features request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var fr models.FeaturesResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return nil, fmt.Errorf("decode features response: %w", err)
	}

	return fr.Features, nil
}

func (h *httpServerAdapter) Predict(ctx context.Context, features map[string]float64) (models.PredictResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PredictRequest{Features: features}).
		Post("/api/predict")
	if err != nil {
		return models.PredictResponse{}, fmt.Errorf("predict request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PredictResponse{}, err
	}

	var pr models.PredictResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return models.PredictResponse{}, fmt.Errorf("decode predict response: %w", err)
	}

	return pr, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(authHeader string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return "", fmt.Errorf("missing bearer token in %q", authHeader)
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
	if token == "" {
		return "", fmt.Errorf("empty bearer token")
	}

	return token, nil
}
