package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/justsurfingit/Campus-Job-Board/internal/apperr"
)

var validate = validator.New()

// Rule pairs a field with a failure message and a predicate. Rules are
// declared in the order the form presents its fields.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// Apply evaluates every rule eagerly and accumulates all failures into one
// ValidationError. A nil return means every rule passed.
func Apply(rules []Rule) error {
	var fields []apperr.FieldError
	for _, rule := range rules {
		if !rule.Valid() {
			fields = append(fields, apperr.FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	if len(fields) > 0 {
		return apperr.NewValidation(fields)
	}
	return nil
}

func NotEmpty(value string) func() bool {
	return func() bool { return strings.TrimSpace(value) != "" }
}

func IsEmail(value string) func() bool {
	return func() bool { return validate.Var(value, "required,email") == nil }
}

func MinLen(value string, min int) func() bool {
	return func() bool { return len(value) >= min }
}

func OneOf(value string, options ...string) func() bool {
	return func() bool {
		for _, option := range options {
			if value == option {
				return true
			}
		}
		return false
	}
}
