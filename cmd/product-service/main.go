package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AtharPnh/e-commerce-application/internal/common/config"
	"github.com/AtharPnh/e-commerce-application/internal/common/lifecycle"
	"github.com/AtharPnh/e-commerce-application/internal/common/logging"
	"github.com/AtharPnh/e-commerce-application/internal/common/middleware"
	"github.com/AtharPnh/e-commerce-application/internal/common/telemetry"
	"github.com/AtharPnh/e-commerce-application/internal/product/handlers"
	"github.com/AtharPnh/e-commerce-application/internal/product/repositories"
	"github.com/AtharPnh/e-commerce-application/internal/product/services"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("product-service")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	telemetryShutdown, err := telemetry.Init(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize telemetry: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg)

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := repositories.Migrate(db); err != nil {
		logger.Error("Failed to migrate schema", slog.Any("error", err))
		os.Exit(1)
	}

	repo := repositories.NewProductRepository(db, logger)
	service := services.NewProductService(repo, logger)
	handler := handlers.NewProductHandler(service, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: middleware.ErrorHandler(logger),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	handler.RegisterRoutes(app)

	addr := ":" + cfg.HTTPPort
	logger.Info("Server starting", slog.String("address", addr))
	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("Server listener failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	lifecycle.WaitForGracefulShutdown(cfg, app.ShutdownWithContext, telemetryShutdown)
}
