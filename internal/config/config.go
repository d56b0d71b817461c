package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr           string
	SheetID        string
	SheetsBaseURL  string
	CacheTTL       time.Duration
	FetchTimeout   time.Duration
	AllowedOrigins []string
	Logger         *slog.Logger
}

// Load reads environment variables and returns a fully populated Config.
// A local .env file is honored when present.
func Load() Config {
	_ = godotenv.Load()

	logger := newLogger(os.Getenv("LOG_LEVEL"))

	cacheTTL := 5 * time.Minute
	if v := strings.TrimSpace(os.Getenv("SHEET_CACHE_TTL")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cacheTTL = parsed
		} else {
			logger.Warn("invalid SHEET_CACHE_TTL, using default", "value", v, "default", cacheTTL)
		}
	}

	fetchTimeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT")); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			fetchTimeout = parsed
		} else {
			logger.Warn("invalid FETCH_TIMEOUT, using default", "value", v, "default", fetchTimeout)
		}
	}

	sheetID := strings.TrimSpace(os.Getenv("SHEET_ID"))
	if sheetID == "" {
		logger.Warn("SHEET_ID is not set; every table read will return empty results")
	}

	return Config{
		Addr:           envOrDefault("HTTP_ADDR", ":8080"),
		SheetID:        sheetID,
		SheetsBaseURL:  strings.TrimRight(envOrDefault("SHEETS_BASE_URL", "https://docs.google.com/spreadsheets"), "/"),
		CacheTTL:       cacheTTL,
		FetchTimeout:   fetchTimeout,
		AllowedOrigins: parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		Logger:         logger,
	}
}

func newLogger(level string) *slog.Logger {
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: parseLogLevel(level),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
