// Package validator adapts the storefront form validation to echo.
package validator

import (
	"storefront/internal/infra/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct{}

// New returns the validator installed on the echo server. Failures are
// ValidationErrors, so the error middleware answers them with 400.
func New() echo.Validator {
	return echoValidator{}
}

func (echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
