// Package validation checks request payloads against their `validate` struct
// tags and turns the first failure into a client-facing message.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// nonempty runs after required on *string fields: required rejects an
	// absent key, nonempty rejects a key sent as "".
	_ = v.RegisterValidation("nonempty", func(fl validator.FieldLevel) bool {
		return fl.Field().String() != ""
	})
	return v
}

// Struct validates payload and returns a ValidationError carrying the message
// of the first failing field, or nil.
func Struct(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errs.NewValidationError(Message(fieldErrs[0]))
	}
	return errs.NewValidationError(err.Error())
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}

// Message renders a single field failure.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "nonempty":
		return fmt.Sprintf("%q is not allowed to be empty", fe.Field())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

// NotAllowed rejects a body key the payload does not declare.
func NotAllowed(key string) error {
	return errs.NewValidationError(fmt.Sprintf("%q is not allowed", key))
}
