package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
	"github.com/AtharPnh/e-commerce-application/internal/common/middleware"
	"github.com/AtharPnh/e-commerce-application/internal/product/models"
)

// stubService cans responses per operation.
type stubService struct {
	createID      int
	createErr     *apierrors.AppError
	product       models.ProductResponse
	productErr    *apierrors.AppError
	products      []models.ProductResponse
	confirmations []models.PurchaseConfirmation
	purchaseErr   *apierrors.AppError
}

func (s *stubService) CreateProduct(context.Context, models.ProductRequest) (int, *apierrors.AppError) {
	return s.createID, s.createErr
}

func (s *stubService) FindByID(context.Context, int) (models.ProductResponse, *apierrors.AppError) {
	return s.product, s.productErr
}

func (s *stubService) FindAll(context.Context) ([]models.ProductResponse, *apierrors.AppError) {
	return s.products, nil
}

func (s *stubService) Purchase(context.Context, []models.PurchaseLine) ([]models.PurchaseConfirmation, *apierrors.AppError) {
	return s.confirmations, s.purchaseErr
}

func newTestApp(svc *stubService) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler(logger)})
	NewProductHandler(svc, logger).RegisterRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, payload
}

func TestPurchaseEndpointSuccess(t *testing.T) {
	svc := &stubService{
		confirmations: []models.PurchaseConfirmation{
			{ProductID: 1, Name: "keyboard", Price: decimal.NewFromInt(120), Quantity: 4},
			{ProductID: 2, Name: "mouse", Price: decimal.NewFromInt(40), Quantity: 3},
		},
	}
	app := newTestApp(svc)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/products/purchase",
		`[{"productId":2,"quantity":3},{"productId":1,"quantity":4}]`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data, ok := payload["data"].([]any)
	if !ok || len(data) != 2 {
		t.Fatalf("data = %v, want 2 confirmations", payload["data"])
	}
}

func TestPurchaseEndpointInsufficientStock(t *testing.T) {
	svc := &stubService{
		purchaseErr: apierrors.NewBusinessError(apierrors.ErrCodeInsufficientStock, "not enough stock for product ID 1", nil),
	}
	app := newTestApp(svc)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/products/purchase",
		`[{"productId":1,"quantity":5}]`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != apierrors.ErrCodeInsufficientStock {
		t.Errorf("error code = %v, want %s", errObj["code"], apierrors.ErrCodeInsufficientStock)
	}
	if errObj["message"] != "not enough stock for product ID 1" {
		t.Errorf("error message = %v", errObj["message"])
	}
}

func TestPurchaseEndpointRejectsEmptyBatch(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/products/purchase", `[]`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestPurchaseEndpointRejectsNonPositiveQuantity(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/products/purchase",
		`[{"productId":1,"quantity":0}]`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != apierrors.ErrCodeRequestValidation {
		t.Errorf("error code = %v, want %s", errObj["code"], apierrors.ErrCodeRequestValidation)
	}
}

func TestCreateProductEndpoint(t *testing.T) {
	app := newTestApp(&stubService{createID: 7})

	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/products",
		`{"name":"keyboard","description":"mechanical","price":"120.00","availableQuantity":25,"categoryId":3}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	data := payload["data"].(map[string]any)
	if data["id"] != float64(7) {
		t.Errorf("id = %v, want 7", data["id"])
	}
}

func TestCreateProductEndpointValidation(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/products",
		`{"description":"missing name","price":"10.00","availableQuantity":5,"categoryId":1}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetProductEndpointNotFound(t *testing.T) {
	svc := &stubService{
		productErr: apierrors.NewBusinessError(apierrors.ErrCodeProductNotFound, "product with id 42 not found", nil),
	}
	app := newTestApp(svc)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/products/42", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetProductEndpointRejectsNonIntegerID(t *testing.T) {
	app := newTestApp(&stubService{})

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/products/abc", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
