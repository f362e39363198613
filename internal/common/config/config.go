package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Minimal logger for the config loading phase, before the real logger exists.
var configLogger = logrus.New()

func init() {
	configLogger.SetOutput(os.Stderr)
	configLogger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	configLogger.SetLevel(logrus.InfoLevel)
}

var (
	allowedLogLevels  = []string{"debug", "info", "warn", "error"}
	allowedLogFormats = []string{"text", "json"}
)

// Config holds all settings for one service instance.
type Config struct {
	// Service information
	ServiceName    string
	ServiceVersion string
	Environment    string

	// HTTP
	HTTPPort string

	// Storage
	DatabaseDSN string

	// Logging
	LogLevel  string
	LogFormat string

	// OpenTelemetry
	OtelEndpoint    string
	OtelInsecure    bool
	OtelSampleRatio float64

	// Shutdown timeouts
	ShutdownTotalTimeout  time.Duration
	ShutdownServerTimeout time.Duration
	ShutdownOtelTimeout   time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. serviceName is used both as the default OTel service name and as
// the env prefix-free fallback, so each binary passes its own.
func Load(serviceName string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", serviceName)
	v.SetDefault("SERVICE_VERSION", "dev")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=ecommerce port=5432 sslmode=disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")
	v.SetDefault("OTEL_EXPORTER_INSECURE", true)
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)
	v.SetDefault("SHUTDOWN_TOTAL_TIMEOUT_SEC", 30)
	v.SetDefault("SHUTDOWN_SERVER_TIMEOUT_SEC", 10)
	v.SetDefault("SHUTDOWN_OTEL_TIMEOUT_SEC", 5)

	v.AutomaticEnv()

	cfg := &Config{
		ServiceName:           v.GetString("SERVICE_NAME"),
		ServiceVersion:        v.GetString("SERVICE_VERSION"),
		Environment:           strings.ToLower(v.GetString("ENVIRONMENT")),
		HTTPPort:              v.GetString("HTTP_PORT"),
		DatabaseDSN:           v.GetString("DATABASE_DSN"),
		LogLevel:              strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:             strings.ToLower(v.GetString("LOG_FORMAT")),
		OtelEndpoint:          v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelInsecure:          v.GetBool("OTEL_EXPORTER_INSECURE"),
		OtelSampleRatio:       v.GetFloat64("OTEL_SAMPLE_RATIO"),
		ShutdownTotalTimeout:  time.Duration(v.GetInt("SHUTDOWN_TOTAL_TIMEOUT_SEC")) * time.Second,
		ShutdownServerTimeout: time.Duration(v.GetInt("SHUTDOWN_SERVER_TIMEOUT_SEC")) * time.Second,
		ShutdownOtelTimeout:   time.Duration(v.GetInt("SHUTDOWN_OTEL_TIMEOUT_SEC")) * time.Second,
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, err := range errs {
			configLogger.WithError(err).Error("Invalid configuration value")
		}
		return nil, fmt.Errorf("configuration validation failed with %d error(s)", len(errs))
	}

	configLogger.WithFields(logrus.Fields{
		"service_name":    cfg.ServiceName,
		"service_version": cfg.ServiceVersion,
		"environment":     cfg.Environment,
		"http_port":       cfg.HTTPPort,
		"log_level":       cfg.LogLevel,
		"log_format":      cfg.LogFormat,
		"otel_endpoint":   cfg.OtelEndpoint,
	}).Info("Configuration loaded")

	return cfg, nil
}

// Validate collects every invalid setting rather than stopping at the first.
func (c *Config) Validate() []error {
	var errs []error

	requireNonEmpty := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}
	requireOneOf := func(name, value string, allowed []string) {
		for _, a := range allowed {
			if value == a {
				return
			}
		}
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", name, strings.Join(allowed, "|"), value))
	}

	requireNonEmpty("SERVICE_NAME", c.ServiceName)
	requireNonEmpty("SERVICE_VERSION", c.ServiceVersion)
	requireNonEmpty("HTTP_PORT", c.HTTPPort)
	requireNonEmpty("DATABASE_DSN", c.DatabaseDSN)
	requireOneOf("LOG_LEVEL", c.LogLevel, allowedLogLevels)
	requireOneOf("LOG_FORMAT", c.LogFormat, allowedLogFormats)

	if c.OtelSampleRatio < 0 || c.OtelSampleRatio > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLE_RATIO must be in [0,1], got %v", c.OtelSampleRatio))
	}

	return errs
}

// IsProduction reports whether the service runs with the production profile.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
