package logging

import (
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"

	"github.com/AtharPnh/e-commerce-application/internal/common/config"
)

// New builds the service logger. In production logs flow through the OTel
// bridge to the collector; everywhere else they go to stdout. The returned
// logger is also installed as the slog default.
func New(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = otelslog.NewHandler(cfg.ServiceName)
	} else {
		opts := &slog.HandlerOptions{Level: level, AddSource: true}
		if cfg.LogFormat == "text" {
			handler = slog.NewTextHandler(os.Stdout, opts)
		} else {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		}
	}

	logger := slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("version", cfg.ServiceVersion),
	)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(level string) slog.Level {
	switch level {
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
