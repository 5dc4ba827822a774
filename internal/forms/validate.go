package forms

import (
	"math"
	"regexp"
	"strings"
)

// Basic validation (intentionally lightweight). Checks local@domain.tld
// shape only; deliverability and full RFC compliance are out of scope.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsNonEmptyString reports whether v is a string with non-whitespace content.
func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsValidEmail reports whether v is a string matching the email pattern.
func IsValidEmail(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsValidRating reports whether v is exactly one of the integers 1 through 5.
// JSON numbers decode as float64, so 5.0 passes while 3.5 and the string "5"
// do not.
func IsValidRating(v any) bool {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	default:
		return false
	}
	if f != math.Trunc(f) {
		return false
	}
	return f >= 1 && f <= 5
}

// Rating converts a validated rating value to int. Callers must check
// IsValidRating first; anything else yields 0.
func Rating(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
