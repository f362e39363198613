package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/apiresponses"
	"github.com/AtharPnh/e-commerce-application/internal/common/validator"
	"github.com/AtharPnh/e-commerce-application/internal/product/models"
)

// Purchase accepts a batch of purchase lines. The body is the bare array the
// original API used; it is wrapped for validation.
func (h *ProductHandler) Purchase(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var lines []models.PurchaseLine
	if parseErr := c.BodyParser(&lines); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid purchase payload", slog.String("error", parseErr.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "invalid request body format", parseErr)
	}
	if validatorErr := validator.ValidateRequest(&models.PurchaseRequest{Lines: lines}); validatorErr != nil {
		return validatorErr
	}

	confirmations, appErr := h.service.Purchase(ctx, lines)
	if appErr != nil {
		return appErr
	}

	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(confirmations))
}
