package services

import (
	"regexp"
	"strings"
)

var (
	// Optional leading +, one digit, then at least 7 more characters from
	// digits, spaces, hyphens and parentheses.
	rePhone = regexp.MustCompile(`^\+?\d[\d\s()\-]{7,}$`)
)

// ValidPhone reports whether s looks like a dialable phone number,
// e.g. "+998901234567" or "90 123-45-67 (ish)".
func ValidPhone(s string) bool {
	return rePhone.MatchString(strings.TrimSpace(s))
}

// FullName requires at least two whitespace-separated words, so a bare
// first name is rejected at the name steps.
func FullName(s string) bool {
	return len(strings.Fields(s)) >= 2
}
