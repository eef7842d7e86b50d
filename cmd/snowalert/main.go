package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/couchcryptid/feedsnow/internal/adapter/snowforecast"
	"github.com/couchcryptid/feedsnow/internal/adapter/twilio"
	"github.com/couchcryptid/feedsnow/internal/config"
	"github.com/couchcryptid/feedsnow/internal/observability"
	"github.com/couchcryptid/feedsnow/internal/snow"
)

func main() {
	// Load .env if present (non-fatal if missing).
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := snowforecast.NewClient(cfg.ForecastURL, cfg.FetchTimeout, logger)
	body, err := client.Fetch(ctx)
	if err != nil {
		logger.Error("forecast fetch failed", "error", err)
		os.Exit(1)
	}

	slots, err := snow.ParseForecast(bytes.NewReader(body))
	if err != nil {
		logger.Error("forecast parse failed", "error", err)
		os.Exit(1)
	}

	report := snow.ComposeReport(slots, cfg.SnowThresholdCM)
	logger.Info("forecast report composed",
		"slots", len(slots),
		"powder_slots", len(snow.FilterPowder(slots, cfg.SnowThresholdCM)))

	notifier := twilio.NewNotifier(cfg, logger)
	notifier.Send(report)
}
