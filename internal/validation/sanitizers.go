package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	nameDisallowed  = regexp.MustCompile(`[^a-zA-Z0-9\s'-]`)
	emailDisallowed = regexp.MustCompile(`[^a-z0-9@._+-]`)
)

// SanitizeName trims the name, collapses whitespace runs into a single space,
// strips everything except letters, digits, whitespace, hyphen and apostrophe,
// and finally truncates to MaxNameLength characters.
func SanitizeName(value string) string {
	s := strings.TrimSpace(value)
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = nameDisallowed.ReplaceAllString(s, "")
	return truncate(s, MaxNameLength)
}

// SanitizeEmail trims and lowercases the email, drops characters outside
// [a-z0-9@._+-] and truncates to MaxEmailLength characters.
func SanitizeEmail(value string) string {
	s := strings.ToLower(strings.TrimSpace(value))
	s = emailDisallowed.ReplaceAllString(s, "")
	return truncate(s, MaxEmailLength)
}

// IsWithinLength reports whether the trimmed length of value lies in
// [min, max], inclusive.
func IsWithinLength(value string, min, max int) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	return n >= min && n <= max
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
