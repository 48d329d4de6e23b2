package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/notification-types-api/internal/config"
	"github.com/notification-types-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/notification-types-api/internal/infrastructure/jwt"
	"github.com/notification-types-api/internal/metrics"
	transporthttp "github.com/notification-types-api/internal/transport/http"
)

// @title           Notification Types API
// @version         1.0.0
// @description     API for listing notification types and their localized descriptions.
//
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg := config.Load()

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		slog.Error("jwt provider", "err", err)
		os.Exit(1)
	}

	// Bootstrap the DynamoDB table (creates it if it doesn't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTableNotificationTypes)

	m := metrics.New()

	deps := &transporthttp.Deps{
		TypeRepo:    dynamo.NewNotificationTypeRepo(dynamoClient, cfg.DynamoTableNotificationTypes),
		JWTProvider: jwtProvider,
		Metrics:     m,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Prometheus metrics on a separate listener so the public API's auth
	// allow-list stays fixed.
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server error", "err", err)
		}
	}()

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "err", err)
	}
	_ = metricsSrv.Shutdown(ctx)
	slog.Info("server stopped")
}
