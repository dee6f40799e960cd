package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ml_relay/internal/client"
	"ml_relay/internal/config"
	"ml_relay/internal/handlers"
	"ml_relay/internal/logger"
	"ml_relay/internal/server"
	"ml_relay/internal/service"

	_ "ml_relay/docs"
)

const shutdownTimeout = 10 * time.Second

// @title        ML API Client
// @version      1.0
// @description  Relays machine sensor readings to an ML prediction backend.
func main() {
	cfg, cfgErr := config.Load()

	// init logger (falls back to info level if config failed to load)
	log := logger.Get(cfg.LogLevel)
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// wire dependencies
	predictor := client.NewPredictor()
	services := service.NewService(predictor, cfg, log)
	apiHandler := handlers.NewHandler(services, cfg, log)

	log.Infow("starting relay", "port", cfg.Port, "ml_base_url", cfg.BaseURL)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	// graceful shutdown
	waitForShutdown(srv, log)
}

// waitForShutdown listens for termination signals and performs graceful
// shutdown, allowing in-flight relay calls to complete.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
