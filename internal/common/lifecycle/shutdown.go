package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AtharPnh/e-commerce-application/internal/common/config"
)

// Shutdowner is anything that can be stopped with a deadline. The fiber app
// and the telemetry SDK both satisfy it through small adapters in main.
type Shutdowner func(context.Context) error

// WaitForGracefulShutdown blocks until SIGINT or SIGTERM, then stops the
// server and telemetry in order, each with its own timeout under an overall
// deadline.
func WaitForGracefulShutdown(cfg *config.Config, server, telemetry Shutdowner) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger := logrus.StandardLogger()
	logger.WithField("signal", sig.String()).Info("Received shutdown signal, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTotalTimeout)
	defer cancel()

	tasks := []struct {
		name     string
		timeout  time.Duration
		shutdown Shutdowner
	}{
		{"server", cfg.ShutdownServerTimeout, server},
		{"telemetry", cfg.ShutdownOtelTimeout, telemetry},
	}

	var shutdownErrs error
	for _, task := range tasks {
		if task.shutdown == nil {
			continue
		}

		taskCtx, taskCancel := context.WithTimeout(shutdownCtx, task.timeout)
		logger.WithField("timeout", task.timeout.String()).Infof("Shutting down %s", task.name)
		if err := task.shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.name)
			shutdownErrs = errors.Join(shutdownErrs, err)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warn("Overall shutdown timeout exceeded, aborting remaining steps")
			shutdownErrs = errors.Join(shutdownErrs, shutdownCtx.Err())
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Shutdown completed with errors")
		os.Exit(1)
	}
	logger.Info("Shutdown completed successfully")
	os.Exit(0)
}
