package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Deesus/Swiss-Tournament-Scheduler/config"
	"github.com/Deesus/Swiss-Tournament-Scheduler/db"
	"github.com/Deesus/Swiss-Tournament-Scheduler/handlers"
	"github.com/Deesus/Swiss-Tournament-Scheduler/live"
	"github.com/Deesus/Swiss-Tournament-Scheduler/repositories"
	"github.com/Deesus/Swiss-Tournament-Scheduler/routes"
	"github.com/Deesus/Swiss-Tournament-Scheduler/services"
	"github.com/go-chi/chi/v5"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		}
	}()
	logger.Info("database connection established")

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("live standings hub started")

	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)

	standingsService := services.NewStandingsService(dbConn, playerRepo, matchRepo, false)
	pairingService := services.NewPairingService(standingsService)
	playerService := services.NewPlayerService(playerRepo, matchRepo)
	matchService := services.NewMatchService(matchRepo, standingsService, hub, logger)
	overviewService := services.NewOverviewService(matchRepo, standingsService)
	adminService := services.NewAdminService(dbConn, playerRepo, matchRepo)
	authService := services.NewAuthService(cfg.OrganizerEmail, cfg.OrganizerPasswordHash)
	logger.Info("services initialized")

	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Player:    handlers.NewPlayerHandler(playerService),
		Match:     handlers.NewMatchHandler(matchService),
		Standings: handlers.NewStandingsHandler(standingsService),
		Pairing:   handlers.NewPairingHandler(pairingService),
		Overview:  handlers.NewOverviewHandler(overviewService),
		Admin:     handlers.NewAdminHandler(adminService),
		WebSocket: handlers.NewWebSocketHandler(hub, logger),
	}, cfg.JWTSecretKey, cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
}
