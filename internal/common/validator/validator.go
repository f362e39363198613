package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/AtharPnh/e-commerce-application/internal/common/apierrors"
)

var validate = validator.New()

// ValidateRequest checks the struct tags on a request payload.
// Returns nil on success, or an AppError with ErrCodeRequestValidation.
func ValidateRequest(payload any) *apierrors.AppError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrors []string
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		for _, vErr := range vErrs {
			fieldErrors = append(fieldErrors, fmt.Sprintf("field '%s' failed on the '%s' rule", vErr.Field(), vErr.Tag()))
		}
	} else {
		fieldErrors = append(fieldErrors, err.Error())
	}

	return apierrors.NewApplicationError(
		apierrors.ErrCodeRequestValidation,
		"validation failed: "+strings.Join(fieldErrors, "; "),
		err,
	)
}

// ValidateVar checks a single value against a rule, for path and query
// parameters that have no struct to hang tags on.
func ValidateVar(value any, tag, name string) *apierrors.AppError {
	if err := validate.Var(value, tag); err != nil {
		return apierrors.NewApplicationError(
			apierrors.ErrCodeRequestValidation,
			fmt.Sprintf("validation failed: parameter '%s' failed on the '%s' rule", name, tag),
			err,
		)
	}
	return nil
}
