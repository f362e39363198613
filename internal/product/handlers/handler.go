package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/AtharPnh/e-commerce-application/internal/product/services"
)

// ProductHandler adapts the product service to HTTP.
type ProductHandler struct {
	service services.ProductService
	logger  *slog.Logger
}

func NewProductHandler(svc services.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{service: svc, logger: logger}
}

// RegisterRoutes mounts the product API under /api/v1.
func (h *ProductHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1/products")
	api.Post("/", h.CreateProduct)
	api.Post("/purchase", h.Purchase)
	api.Get("/", h.GetAllProducts)
	api.Get("/:productId", h.GetProductByID)
}
