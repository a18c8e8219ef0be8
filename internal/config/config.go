// Package config loads service configuration from the environment, with a
// best-effort .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Vendor struct {
	BaseURL   string
	APIKey    string
	Username  string
	Password  string
	Company   string
	LoginPath string
	Timeout   time.Duration
}

type Ingest struct {
	// ReportSettingID selects the saved report the scheduler ingests;
	// empty disables the report stage.
	ReportSettingID string
	Interval        time.Duration
	EnrichWorkers   int
}

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string
	LogPretty   bool
	Vendor      Vendor
	Ingest      Ingest
}

// Load reads configuration from the environment. All vendor credentials
// and the database URL are required; everything else has defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	var missing []string
	required := func(key string) string {
		value := os.Getenv(key)
		if value == "" {
			missing = append(missing, key)
		}
		return value
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: required("DATABASE_URL"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogPretty:   os.Getenv("LOG_PRETTY") == "1",
		Vendor: Vendor{
			BaseURL:   required("EMP_API_BASE_URL"),
			APIKey:    required("EMP_API_KEY"),
			Username:  required("EMP_API_USERNAME"),
			Password:  required("EMP_API_PASSWORD"),
			Company:   required("EMP_API_COMPANY"),
			LoginPath: getEnv("EMP_API_LOGIN_PATH", "v1/login"),
			Timeout:   time.Duration(getIntEnv("EMP_HTTP_TIMEOUT_MS", 60000)) * time.Millisecond,
		},
		Ingest: Ingest{
			ReportSettingID: os.Getenv("EMP_REPORT_SETTING_ID"),
			Interval:        time.Duration(getIntEnv("INGEST_INTERVAL_MINUTES", 30)) * time.Minute,
			EnrichWorkers:   getIntEnv("ENRICH_WORKERS", 4),
		},
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required env: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
