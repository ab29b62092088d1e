// Command viewer serves the Tacloban City coastal vulnerability viewer: it
// loads the landmark and boundary files, then serves the embedded map
// frontend and view API. Configuration is environment-only; see
// internal/config for the variables and defaults.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/coastal-vuln-viewer/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/coastal-vuln-viewer/internal/adapter/kafka"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/config"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/observability"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/viewer"
	"github.com/couchcryptid/coastal-vuln-viewer/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// A LoadError is fatal: either the full dataset loads or the session
	// does not start.
	dataset, err := store.Load(cfg.LandmarksPath, cfg.BoundariesPath)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}
	metrics.LandmarksLoaded.Set(float64(len(dataset.Landmarks())))
	logger.Info("dataset loaded",
		"landmarks", len(dataset.Landmarks()),
		"landmarks_path", cfg.LandmarksPath,
		"boundaries_path", cfg.BoundariesPath,
	)

	staticFS, err := web.StaticFS()
	if err != nil {
		logger.Error("failed to open embedded frontend", "error", err)
		os.Exit(1)
	}

	// Selection-event publishing is feature-flagged via KAFKA_ENABLED.
	var publisher httpadapter.EventPublisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		metrics.PublisherEnabled.Set(1)
		logger.Info("view-event publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("view-event publishing disabled")
	}

	session := viewer.NewSession(dataset)
	srv := httpadapter.NewServer(cfg.HTTPAddr, dataset, session, publisher, staticFS, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
