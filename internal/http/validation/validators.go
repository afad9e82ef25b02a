// Package validation checks submitted panel forms field by field.
package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validator returns an error message for v, or "" when v is acceptable.
type Validator func(v string) string

// Required rejects blank values and values longer than maxLen runes.
func Required(fieldName string, maxLen int) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return fieldName + " is required."
		}
		if utf8.RuneCountInString(v) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Optional accepts blank values and rejects values longer than maxLen runes.
func Optional(fieldName string, maxLen int) Validator {
	return func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// OneOf accepts one of options, compared case-insensitively.
func OneOf(fieldName string, options []string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		for _, opt := range options {
			if strings.EqualFold(v, opt) {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.Join(options, ", "))
	}
}

// Pattern requires non-blank values to match re.
func Pattern(fieldName string, re *regexp.Regexp) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v != "" && !re.MatchString(v) {
			return fieldName + " has an invalid format."
		}
		return ""
	}
}

// Email requires a bare address such as ops@example.com.
func Email(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return "Enter a valid " + strings.ToLower(fieldName) + "."
		}
		return ""
	}
}

// FieldValidator collects the first error per field.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate runs validators against value, stopping at the first failure.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}

// Valid reports whether no field failed.
func (fv *FieldValidator) Valid() bool {
	return len(fv.errors) == 0
}
