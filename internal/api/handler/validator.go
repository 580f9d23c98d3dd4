package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagMessages maps a validation tag to a message builder. field arrives
// lowercased, param is the tag parameter ("6" for min=6).
var tagMessages = map[string]func(field, param string) string{
	"required": func(field, _ string) string { return field + " is required" },
	"email":    func(field, _ string) string { return field + " must be a valid email" },
	"min":      func(field, param string) string { return field + " must be at least " + param },
	"oneof":    func(field, param string) string { return field + " must be one of: " + param },
}

// echoValidator adapts go-playground/validator to the echo.Validator
// interface, turning struct-tag failures into one readable message.
type echoValidator struct {
	v *validator.Validate
}

func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, len(ve))
	for i, fe := range ve {
		field := strings.ToLower(fe.Field())
		if build, ok := tagMessages[fe.Tag()]; ok {
			msgs[i] = build(field, fe.Param())
		} else {
			msgs[i] = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
