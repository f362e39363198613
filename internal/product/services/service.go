package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/telemetry"
	"github.com/AtharPnh/e-commerce-application/internal/product/models"
	"github.com/AtharPnh/e-commerce-application/internal/product/repositories"
)

// ProductService exposes the catalog and the purchase operation.
type ProductService interface {
	CreateProduct(ctx context.Context, req models.ProductRequest) (int, *apierrors.AppError)
	FindByID(ctx context.Context, id int) (models.ProductResponse, *apierrors.AppError)
	FindAll(ctx context.Context) ([]models.ProductResponse, *apierrors.AppError)
	Purchase(ctx context.Context, lines []models.PurchaseLine) ([]models.PurchaseConfirmation, *apierrors.AppError)
}

type productService struct {
	repo   repositories.ProductRepository
	logger *slog.Logger
}

// NewProductService wires the service to its inventory store.
func NewProductService(repo repositories.ProductRepository, logger *slog.Logger) ProductService {
	return &productService{repo: repo, logger: logger}
}

func (s *productService) CreateProduct(ctx context.Context, req models.ProductRequest) (id int, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.String("product.name", req.Name))
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	// The struct tags cannot express positivity for a decimal.
	if !req.Price.IsPositive() {
		appErr = apierrors.NewApplicationError(apierrors.ErrCodeRequestValidation, "product price should be positive", nil)
		return 0, appErr
	}

	product := req.ToProduct()
	if appErr = s.repo.Create(ctx, &product); appErr != nil {
		return 0, appErr
	}

	s.logger.InfoContext(ctx, "Product created",
		slog.Int("product_id", product.ID),
		slog.String("name", product.Name),
	)
	return product.ID, nil
}

func (s *productService) FindByID(ctx context.Context, id int) (resp models.ProductResponse, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx, attribute.Int("product.id", id))
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	product, appErr := s.repo.FindByID(ctx, id)
	if appErr != nil {
		return models.ProductResponse{}, appErr
	}
	return product.ToResponse(), nil
}

func (s *productService) FindAll(ctx context.Context) (resps []models.ProductResponse, appErr *apierrors.AppError) {
	ctx, span := telemetry.StartSpan(ctx)
	defer func() {
		var err error
		if appErr != nil {
			err = appErr
		}
		telemetry.EndSpan(span, &err)
	}()

	products, appErr := s.repo.FindAll(ctx)
	if appErr != nil {
		return nil, appErr
	}

	resps = make([]models.ProductResponse, 0, len(products))
	for _, p := range products {
		resps = append(resps, p.ToResponse())
	}
	s.logger.DebugContext(ctx, fmt.Sprintf("Listed %d products", len(resps)))
	return resps, nil
}
