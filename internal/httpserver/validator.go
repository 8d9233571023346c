package httpserver

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Skotchmaster/marketplace/internal/transport"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// fieldErrors flattens validator failures into the envelope's errors array.
func fieldErrors(err error) []transport.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []transport.FieldError{{Field: "body", Message: "invalid request body"}}
	}

	out := make([]transport.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, transport.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
