package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// emailRegex is a deliberately loose local@domain.tld check, not RFC 5322.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required reports whether value is non-empty after trimming whitespace.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsValidEmail reports whether the trimmed value has a basic local@domain.tld
// shape with no embedded whitespace.
func IsValidEmail(value string) bool {
	if !Required(value) {
		return false
	}
	return emailRegex.MatchString(strings.TrimSpace(value))
}

// IsStrongEnoughPassword reports whether the raw (untrimmed) password has at
// least MinPasswordLength characters.
func IsStrongEnoughPassword(value string) bool {
	return utf8.RuneCountInString(value) >= MinPasswordLength
}

// NormalizeEmail trims and lowercases an email. It is idempotent.
func NormalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
