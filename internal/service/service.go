package service

import (
	"context"

	"ml_relay/internal/client"
	"ml_relay/internal/config"
	"ml_relay/internal/logger"
	"ml_relay/internal/models"
)

// Relay forwards the prediction-relevant subset of a reading to the ML
// backend and returns the backend's decoded JSON response.
type Relay interface {
	Send(ctx context.Context, reading models.CriticalReading) (any, error)
}

// Service aggregates all sub-services consumed by the HTTP layer.
type Service struct {
	Relay
}

// NewService wires the outbound client and configuration into concrete
// services.
func NewService(predictor client.Poster, cfg config.Config, log *logger.Logger) *Service {
	return &Service{
		Relay: NewRelayService(predictor, cfg.BaseURL, log),
	}
}
