package apierrors

import (
	"fmt"
	"net/http"
)

// ErrorCategory distinguishes business rule violations from technical faults.
type ErrorCategory string

const (
	CategoryBusiness    ErrorCategory = "business"
	CategoryApplication ErrorCategory = "application"
)

// Business error codes.
const (
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ErrCodePurchaseRejected  = "PURCHASE_REJECTED"  // one or more requested products does not exist
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK" // requested quantity exceeds available stock
)

// Application error codes.
const (
	ErrCodeDatabaseAccess     = "DATABASE_ACCESS_ERROR"
	ErrCodeRequestValidation  = "REQUEST_VALIDATION_ERROR"
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR"
	ErrCodeUnknown            = "UNKNOWN_ERROR"
)

// AppError is the standard application error carried through every layer and
// translated to an HTTP response by the fiber error handler.
type AppError struct {
	Code     string
	Category ErrorCategory
	Message  string
	Err      error
	Context  map[string]any
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext attaches a key/value pair for diagnostics and responses.
func (e *AppError) WithContext(key string, value any) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// HTTPStatus maps the error code to the status the boundary should return.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeProductNotFound, ErrCodeCustomerNotFound:
		return http.StatusNotFound
	case ErrCodePurchaseRejected, ErrCodeInsufficientStock, ErrCodeRequestValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewBusinessError creates an AppError for a business rule violation.
func NewBusinessError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Category: CategoryBusiness, Message: message, Err: cause}
}

// NewApplicationError creates an AppError for a technical fault.
func NewApplicationError(code, message string, cause error) *AppError {
	return &AppError{Code: code, Category: CategoryApplication, Message: message, Err: cause}
}
