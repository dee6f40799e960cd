package handlers

import (
	"ml_relay/internal/config"
	"ml_relay/internal/logger"
	"ml_relay/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// staticDir holds the bundled manual sender page, served under /static.
const staticDir = "./static"

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	cfg      config.Config
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, cfg config.Config, log *logger.Logger) *Handler {
	return &Handler{services: services, cfg: cfg, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestIDMiddleware)
	router.Use(cors.New(h.corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Liveness + health
	router.GET("/", h.root)
	router.GET("/health", h.health)

	// Manual sender page
	router.Static("/static", staticDir)

	// Relay endpoint
	router.POST("/send_critical_data", h.sendCriticalData)

	return router
}

// corsConfig permits exactly one origin, with all methods and headers for it.
func (h *Handler) corsConfig() cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = []string{h.cfg.AllowedOrigin}
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	c.AllowHeaders = []string{"*"}
	c.AllowCredentials = true
	return c
}
