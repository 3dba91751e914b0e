// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/pseudonym/internal/errors"
)

var (
	// localeTagRegex matches BCP-47-style primary language subtags ("en", "de", "pt-BR").
	localeTagRegex = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// LocaleTag validates that a string looks like a locale tag ("en", "pt-BR").
// Whether the locale has dictionary data is checked separately at context construction.
var LocaleTag = validation.NewStringRuleWithError(
	func(s string) bool {
		return localeTagRegex.MatchString(s)
	},
	validation.NewError("validation_locale_tag", "must be a locale tag such as 'en' or 'pt-BR'"),
)
