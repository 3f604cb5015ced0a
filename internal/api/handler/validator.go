package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// fieldMessages holds the client-facing message per "<json field>.<tag>".
// A "<json field>" entry applies to every tag of that field.
var fieldMessages = map[string]string{
	"name.required":         "Name is required",
	"email":                 "Please include a valid email",
	"password.min":          "Please enter a password with 6 or more characters",
	"password.required":     "Password is required",
	"status.required":       "Status is required",
	"skills.required":       "Skills is required",
	"title.required":        "Title is required",
	"company.required":      "Company is required",
	"from.required":         "From date is required",
	"school.required":       "School is required",
	"degree.required":       "Degree is required",
	"fieldofstudy.required": "Field of study is required",
	"text.required":         "Text is required",
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures are returned as
// *domain.ValidationError listing every rejected field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	verr := &domain.ValidationError{}
	for _, fe := range ve {
		verr.Add(fe.Field(), fieldError(fe))
	}
	return verr
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	if msg, ok := fieldMessages[field+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[field]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
