package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/apiresponses"
)

func (h *ProductHandler) GetProductByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, convErr := c.ParamsInt("productId")
	if convErr != nil {
		h.logger.WarnContext(ctx, "Invalid product id parameter", slog.String("raw", c.Params("productId")))
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "productId must be an integer", convErr)
	}

	product, appErr := h.service.FindByID(ctx, id)
	if appErr != nil {
		return appErr
	}

	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(product))
}
