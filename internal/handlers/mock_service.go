package handlers

import (
	"context"

	"ml_relay/internal/config"
	"ml_relay/internal/models"
	"ml_relay/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockRelay struct {
	resp        any
	err         error
	calls       int
	lastReading models.CriticalReading
}

func (m *mockRelay) Send(ctx context.Context, reading models.CriticalReading) (any, error) {
	m.calls++
	m.lastReading = reading
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

const testOrigin = "http://localhost:8080"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, config.Config{AllowedOrigin: testOrigin}, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
