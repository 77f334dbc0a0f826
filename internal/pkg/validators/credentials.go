package validators

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]+$`)

// ValidUsername reports whether the value contains only lowercase latin
// letters, digits, dots, underscores and hyphens.
func ValidUsername(value string) bool {
	return usernamePattern.MatchString(value)
}

// ValidPassword reports whether the value contains at least one letter and
// at least one digit, with no leading or trailing whitespace.
func ValidPassword(value string) bool {
	if value != strings.TrimSpace(value) {
		return false
	}

	var hasLetter, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// UsernameChars is the struct tag adapter for ValidUsername.
func UsernameChars(fl validator.FieldLevel) bool {
	return ValidUsername(fl.Field().String())
}

// PasswordChars is the struct tag adapter for ValidPassword.
func PasswordChars(fl validator.FieldLevel) bool {
	return ValidPassword(fl.Field().String())
}
