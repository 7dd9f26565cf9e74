package service

import (
	"phishguard/internal/logger"
	"phishguard/internal/ml"
	"phishguard/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService       AuthService
	PredictionService PredictionService
}

// NewServices wires the service layer to its storage and inference
// dependencies.
func NewServices(storages *store.Storages, pipeline *ml.Pipeline, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.Credentials, logger),
		PredictionService: NewPredictionService(pipeline, logger),
	}
}
