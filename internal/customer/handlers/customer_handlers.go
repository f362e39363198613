package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/apiresponses"
	"github.com/AtharPnh/e-commerce-application/internal/common/validator"
	"github.com/AtharPnh/e-commerce-application/internal/customer/models"
)

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req models.CustomerRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid customer payload", slog.String("error", parseErr.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "invalid request body format", parseErr)
	}
	if validatorErr := validator.ValidateRequest(&req); validatorErr != nil {
		return validatorErr
	}

	id, appErr := h.service.CreateCustomer(ctx, req)
	if appErr != nil {
		return appErr
	}

	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(fiber.Map{"id": id}))
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req models.CustomerRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		h.logger.WarnContext(ctx, "Invalid customer payload", slog.String("error", parseErr.Error()))
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "invalid request body format", parseErr)
	}
	if validatorErr := validator.ValidateVar(req.ID, "required", "id"); validatorErr != nil {
		return validatorErr
	}

	if appErr := h.service.UpdateCustomer(ctx, req); appErr != nil {
		return appErr
	}

	return c.SendStatus(http.StatusAccepted)
}

func (h *CustomerHandler) GetAllCustomers(c *fiber.Ctx) error {
	customers, appErr := h.service.FindAll(c.UserContext())
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(customers))
}

func (h *CustomerHandler) GetCustomerByID(c *fiber.Ctx) error {
	customer, appErr := h.service.FindByID(c.UserContext(), c.Params("customerId"))
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(customer))
}

func (h *CustomerHandler) CustomerExists(c *fiber.Ctx) error {
	exists, appErr := h.service.ExistsByID(c.UserContext(), c.Params("customerId"))
	if appErr != nil {
		return appErr
	}
	return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(exists))
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	if appErr := h.service.DeleteByID(c.UserContext(), c.Params("customerId")); appErr != nil {
		return appErr
	}
	return c.SendStatus(http.StatusAccepted)
}
