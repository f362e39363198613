package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/AtharPnh/e-commerce-application/internal/customer/services"
)

// CustomerHandler adapts the customer service to HTTP.
type CustomerHandler struct {
	service services.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(svc services.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{service: svc, logger: logger}
}

// RegisterRoutes mounts the customer API under /api/v1.
func (h *CustomerHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api/v1/customers")
	api.Post("/", h.CreateCustomer)
	api.Put("/", h.UpdateCustomer)
	api.Get("/", h.GetAllCustomers)
	api.Get("/exists/:customerId", h.CustomerExists)
	api.Get("/:customerId", h.GetCustomerByID)
	api.Delete("/:customerId", h.DeleteCustomer)
}
