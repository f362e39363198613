package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/telemetry"
	"github.com/AtharPnh/e-commerce-application/internal/customer/models"
	"github.com/AtharPnh/e-commerce-application/internal/customer/repositories"
)

// CustomerService exposes customer record management.
type CustomerService interface {
	CreateCustomer(ctx context.Context, req models.CustomerRequest) (string, *apierrors.AppError)
	UpdateCustomer(ctx context.Context, req models.CustomerRequest) *apierrors.AppError
	FindByID(ctx context.Context, id string) (models.CustomerResponse, *apierrors.AppError)
	FindAll(ctx context.Context) ([]models.CustomerResponse, *apierrors.AppError)
	ExistsByID(ctx context.Context, id string) (bool, *apierrors.AppError)
	DeleteByID(ctx context.Context, id string) *apierrors.AppError
}

type customerService struct {
	repo   repositories.CustomerRepository
	logger *slog.Logger
}

func NewCustomerService(repo repositories.CustomerRepository, logger *slog.Logger) CustomerService {
	return &customerService{repo: repo, logger: logger}
}

func (s *customerService) CreateCustomer(ctx context.Context, req models.CustomerRequest) (id string, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx)
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	customer := req.ToCustomer()
	customer.ID = uuid.NewString()
	if appErr = s.repo.Create(ctx, &customer); appErr != nil {
		return "", appErr
	}

	s.logger.InfoContext(ctx, "Customer created", slog.String("customer_id", customer.ID))
	return customer.ID, nil
}

// UpdateCustomer merges the request into the stored record: only non-blank
// fields overwrite.
func (s *customerService) UpdateCustomer(ctx context.Context, req models.CustomerRequest) (appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.String("customer.id", req.ID))
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	customer, appErr := s.repo.FindByID(ctx, req.ID)
	if appErr != nil {
		if appErr.Code == apierrors.ErrCodeCustomerNotFound {
			return apierrors.NewBusinessError(
				apierrors.ErrCodeCustomerNotFound,
				fmt.Sprintf("cannot update customer: customer with id %s not found", req.ID),
				nil,
			).WithContext("customerId", req.ID)
		}
		return appErr
	}

	mergeCustomer(&customer, req)
	if appErr = s.repo.Save(ctx, &customer); appErr != nil {
		return appErr
	}

	s.logger.InfoContext(ctx, "Customer updated", slog.String("customer_id", customer.ID))
	return nil
}

func mergeCustomer(customer *models.Customer, req models.CustomerRequest) {
	if strings.TrimSpace(req.FirstName) != "" {
		customer.FirstName = req.FirstName
	}
	if strings.TrimSpace(req.LastName) != "" {
		customer.LastName = req.LastName
	}
	if strings.TrimSpace(req.Email) != "" {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
}

func (s *customerService) FindByID(ctx context.Context, id string) (resp models.CustomerResponse, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.String("customer.id", id))
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	customer, appErr := s.repo.FindByID(ctx, id)
	if appErr != nil {
		return models.CustomerResponse{}, appErr
	}
	return customer.ToResponse(), nil
}

func (s *customerService) FindAll(ctx context.Context) (resps []models.CustomerResponse, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx)
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	customers, appErr := s.repo.FindAll(ctx)
	if appErr != nil {
		return nil, appErr
	}

	resps = make([]models.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resps = append(resps, c.ToResponse())
	}
	return resps, nil
}

func (s *customerService) ExistsByID(ctx context.Context, id string) (exists bool, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.String("customer.id", id))
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	return s.repo.ExistsByID(ctx, id)
}

func (s *customerService) DeleteByID(ctx context.Context, id string) (appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.String("customer.id", id))
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	if appErr = s.repo.DeleteByID(ctx, id); appErr != nil {
		return appErr
	}
	s.logger.InfoContext(ctx, "Customer deleted", slog.String("customer_id", id))
	return nil
}
