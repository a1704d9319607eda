package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/masalawok/orderbot/internal/actions"
	"github.com/masalawok/orderbot/internal/api/router"
	appconfig "github.com/masalawok/orderbot/internal/config"
	"github.com/masalawok/orderbot/internal/conversation"
	"github.com/masalawok/orderbot/internal/menu"
	"github.com/masalawok/orderbot/internal/observability/metrics"
	"github.com/masalawok/orderbot/internal/session"
	"github.com/masalawok/orderbot/internal/store"
	"github.com/masalawok/orderbot/internal/timewindow"
	"github.com/masalawok/orderbot/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting orderbot server",
		"env", cfg.Env,
		"port", cfg.Port,
		"model", cfg.OpenAIModel,
	)

	if cfg.OpenAIAPIKey == "" {
		logger.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}

	ctx := context.Background()

	st, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer st.Close()
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set, reservations are kept in memory only")
	}

	catalog, err := menu.Load(cfg.MenuPath)
	if err != nil {
		logger.Error("failed to load menu", "path", cfg.MenuPath, "error", err)
		os.Exit(1)
	}

	window, err := timewindow.New(cfg.Timezone)
	if err != nil {
		logger.Error("failed to load business timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	convMetrics := metrics.NewConversationMetrics(prometheus.DefaultRegisterer)

	registry, err := actions.NewRegistry(st, catalog, window, logger, convMetrics)
	if err != nil {
		logger.Error("failed to build action registry", "error", err)
		os.Exit(1)
	}

	client := conversation.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.ModelTimeout)
	engine := conversation.NewEngine(client, registry, logger, convMetrics)
	sessions := session.NewManager(engine, logger)
	sessionHandler := session.NewHandler(sessions, logger)

	r := router.New(&router.Config{
		Logger:         logger,
		SessionHandler: sessionHandler,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
