package validator

import (
	"strings"
	"testing"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
)

type samplePayload struct {
	Name     string  `validate:"required"`
	Quantity float64 `validate:"gt=0"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload samplePayload
		wantErr bool
		wantIn  string
	}{
		{"valid", samplePayload{Name: "keyboard", Quantity: 2}, false, ""},
		{"missing name", samplePayload{Quantity: 2}, true, "Name"},
		{"zero quantity", samplePayload{Name: "keyboard"}, true, "Quantity"},
		{"negative quantity", samplePayload{Name: "keyboard", Quantity: -1}, true, "gt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := ValidateRequest(&tt.payload)
			if tt.wantErr != (appErr != nil) {
				t.Fatalf("ValidateRequest = %v, wantErr=%v", appErr, tt.wantErr)
			}
			if appErr == nil {
				return
			}
			if appErr.Code != apierrors.ErrCodeRequestValidation {
				t.Errorf("code = %s, want %s", appErr.Code, apierrors.ErrCodeRequestValidation)
			}
			if !strings.Contains(appErr.Message, tt.wantIn) {
				t.Errorf("message %q does not mention %q", appErr.Message, tt.wantIn)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if appErr := ValidateVar("", "required", "id"); appErr == nil {
		t.Error("empty required var should fail")
	}
	if appErr := ValidateVar("c1", "required", "id"); appErr != nil {
		t.Errorf("non-empty required var failed: %v", appErr)
	}
}
