package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AtharPnh/e-commerce-application/internal/common/apiresponses"
)

func (h *ProductHandler) GetAllProducts(c *fiber.Ctx) error {
	products, appErr := h.service.FindAll(c.UserContext())
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(products))
}
