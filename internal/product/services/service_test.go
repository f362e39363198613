package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/product/models"
)

func TestCreateProductAssignsID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewProductService(repo, testLogger())

	id, appErr := svc.CreateProduct(context.Background(), models.ProductRequest{
		Name:              "keyboard",
		Description:       "mechanical keyboard",
		Price:             decimal.NewFromInt(120),
		AvailableQuantity: 25,
		CategoryID:        3,
	})
	if appErr != nil {
		t.Fatalf("CreateProduct: %v", appErr)
	}
	if id == 0 {
		t.Error("expected a non-zero id")
	}
	if repo.products[id].Name != "keyboard" {
		t.Errorf("stored name = %q, want keyboard", repo.products[id].Name)
	}
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
	}{
		{"zero", decimal.Zero},
		{"negative", decimal.NewFromInt(-5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewProductService(newFakeRepo(), testLogger())
			_, appErr := svc.CreateProduct(context.Background(), models.ProductRequest{
				Name:              "keyboard",
				Description:       "mechanical keyboard",
				Price:             tt.price,
				AvailableQuantity: 25,
				CategoryID:        3,
			})
			if appErr == nil || appErr.Code != apierrors.ErrCodeRequestValidation {
				t.Fatalf("got %v, want %s", appErr, apierrors.ErrCodeRequestValidation)
			}
		})
	}
}

func TestFindByIDNotFound(t *testing.T) {
	svc := NewProductService(newFakeRepo(), testLogger())

	_, appErr := svc.FindByID(context.Background(), 42)
	if appErr == nil || appErr.Code != apierrors.ErrCodeProductNotFound {
		t.Fatalf("got %v, want %s", appErr, apierrors.ErrCodeProductNotFound)
	}
}

func TestFindAllMapsEveryProduct(t *testing.T) {
	repo := newFakeRepo(testProduct(1, 10), testProduct(2, 5))
	svc := NewProductService(repo, testLogger())

	resps, appErr := svc.FindAll(context.Background())
	if appErr != nil {
		t.Fatalf("FindAll: %v", appErr)
	}
	if len(resps) != 2 {
		t.Errorf("got %d responses, want 2", len(resps))
	}
}
