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

func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req models.ProductRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid product payload", slog.String("error", parseErr.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "invalid request body format", parseErr)
	}
	if validatorErr := validator.ValidateRequest(&req); validatorErr != nil {
		return validatorErr
	}

	id, appErr := h.service.CreateProduct(ctx, req)
	if appErr != nil {
		return appErr
	}

	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(fiber.Map{"id": id}))
}
