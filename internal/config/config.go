package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// DefaultForecastURL is the six-day mid-elevation metric forecast page for
// Grouse Mountain.
const DefaultForecastURL = "https://www.snow-forecast.com/resorts/Grouse-Mountain/6day/mid?units=m"

// Config holds all snow-alert settings, populated from environment variables.
type Config struct {
	ForecastURL     string
	FetchTimeout    time.Duration
	SnowThresholdCM float64
	LogLevel        string
	LogFormat       string

	// Twilio delivery configuration. SID and token both empty means
	// notification is skipped, not an error.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioToNumber   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	fetchTimeoutStr := envOrDefault("FETCH_TIMEOUT", "15s")
	fetchTimeout, err := time.ParseDuration(fetchTimeoutStr)
	if err != nil || fetchTimeout <= 0 {
		return nil, errors.New("invalid FETCH_TIMEOUT")
	}

	threshold, err := parseSnowThreshold()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ForecastURL:     envOrDefault("FORECAST_URL", DefaultForecastURL),
		FetchTimeout:    fetchTimeout,
		SnowThresholdCM: threshold,
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		TwilioToNumber:   os.Getenv("TWILIO_TO_NUMBER"),
	}

	if cfg.ForecastURL == "" {
		return nil, errors.New("FORECAST_URL is required")
	}

	return cfg, nil
}

// NotifyEnabled reports whether Twilio credentials are present. Without them
// the notifier is a safe no-op.
func (c *Config) NotifyEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != ""
}

func parseSnowThreshold() (float64, error) {
	s := os.Getenv("SNOW_THRESHOLD_CM")
	if s == "" {
		return 3.0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid SNOW_THRESHOLD_CM")
	}
	return v, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
