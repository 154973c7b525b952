package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve validator.Validate con los mensajes que devolvemos por HTTP.
type Validator struct {
	validate *validator.Validate
}

var (
	once     sync.Once
	instance *Validator
)

// Default devuelve la instancia compartida (validator.Validate cachea structs).
func Default() *Validator {
	once.Do(func() {
		instance = New()
	})
	return instance
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", notBlank)
	return &Validator{validate: v}
}

func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// Fields traduce validator.ValidationErrors a field -> mensaje.
// Sin exponer nombres internos de structs.
func Fields(err error) map[string]string {
	if err == nil {
		return nil
	}

	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["error"] = "invalid request"
		return out
	}

	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required", "notblank":
			out[field] = "is required"
		case "max":
			out[field] = fmt.Sprintf("must be at most %s characters", e.Param())
		case "min":
			out[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "url":
			out[field] = "must be a valid url"
		case "oneof":
			out[field] = fmt.Sprintf("must be one of: %s", e.Param())
		default:
			out[field] = "invalid value"
		}
	}
	return out
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
