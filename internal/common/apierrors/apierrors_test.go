package apierrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{ErrCodeProductNotFound, http.StatusNotFound},
		{ErrCodeCustomerNotFound, http.StatusNotFound},
		{ErrCodePurchaseRejected, http.StatusBadRequest},
		{ErrCodeInsufficientStock, http.StatusBadRequest},
		{ErrCodeRequestValidation, http.StatusBadRequest},
		{ErrCodeDatabaseAccess, http.StatusInternalServerError},
		{ErrCodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		appErr := NewBusinessError(tt.code, "msg", nil)
		if got := appErr.HTTPStatus(); got != tt.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("connection reset")
	appErr := NewApplicationError(ErrCodeDatabaseAccess, "failed to fetch products", cause)
	if !errors.Is(appErr, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var target *AppError
	if !errors.As(error(appErr), &target) {
		t.Error("errors.As should match *AppError")
	}
	if target.Category != CategoryApplication {
		t.Errorf("Category = %q, want %q", target.Category, CategoryApplication)
	}
}

func TestWithContext(t *testing.T) {
	appErr := NewBusinessError(ErrCodeInsufficientStock, "not enough stock for product ID 7", nil).
		WithContext("productId", 7)
	if appErr.Context["productId"] != 7 {
		t.Errorf("Context[productId] = %v, want 7", appErr.Context["productId"])
	}
}
