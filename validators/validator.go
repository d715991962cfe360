package validators

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to Echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with struct tag validation enabled
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates the given struct against its validate tags
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FieldErrors flattens a validation error into a per-field message map usable
// by templates for inline error display. Non-validation errors map to a
// single form-level message.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "This field is required."
			case "email":
				out[fe.Field()] = "Enter a valid email address."
			case "min":
				out[fe.Field()] = "Value is too short."
			case "max":
				out[fe.Field()] = "Value is too long."
			default:
				out[fe.Field()] = "Invalid value."
			}
		}
		return out
	}
	out["Form"] = "Invalid submission."
	return out
}
