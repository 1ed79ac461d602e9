// Package validator wraps the go-playground/validator library behind a small
// surface with thread-safe initialization and a standardized error chain.
//
// Structs declare rules through tags (e.g. `validate:"required"`) and callers
// detect failures with errors.Is against ErrValidation.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

var (
	// validator is the singleton go-playground instance built by Init.
	validator *gvalidator.Validate

	// initValidatorOnce makes repeated Init calls harmless.
	initValidatorOnce sync.Once
)

// ErrValidation is the first error in the chain whenever one or more
// validation rules are violated.
var ErrValidation = errors.New("validation error")

// errStringFormat renders a single field violation.
//
// Example: "'Address': value '0x' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init builds the singleton validator with required-struct validation
// enabled. Only the first call takes effect.
func Init() {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// formatError converts raw validator output into a multi-error chain rooted
// at ErrValidation, one formatted message per violated field. Errors that are
// not field violations pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		var (
			field = validationErr.Field()
			tag   = validationErr.Tag()
			value = validationErr.Value()
		)

		errs = append(errs, fmt.Errorf(errStringFormat, field, value, tag))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its validation tags. It returns
// nil when everything passes, or an error chain that includes ErrValidation
// plus one message per failing field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
