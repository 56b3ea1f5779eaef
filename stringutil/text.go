package stringutil

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	numberRe    = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// Truncate shortens a string to at most maxLen characters, appending the
// suffix when truncation happens. The suffix counts toward the limit.
func Truncate(s string, maxLen int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	cut := maxLen - len([]rune(suffix))
	if cut < 0 {
		cut = 0
	}
	return string(runes[:cut]) + suffix
}

// Slugify lowercases a string and replaces every run of non-alphanumeric
// characters with the separator, producing a URL-friendly slug.
func Slugify(s, sep string) string {
	slug := slugInvalid.ReplaceAllString(strings.ToLower(s), sep)
	return strings.Trim(slug, sep)
}

// IsEmpty reports whether a string is empty or contains only whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotEmpty reports whether a string contains any non-whitespace content.
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// Reverse returns the string with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// RemovePrefix removes the prefix if present, otherwise returns the string
// unchanged.
func RemovePrefix(s, prefix string) string {
	return strings.TrimPrefix(s, prefix)
}

// RemoveSuffix removes the suffix if present, otherwise returns the string
// unchanged.
func RemoveSuffix(s, suffix string) string {
	return strings.TrimSuffix(s, suffix)
}

// Mask replaces the middle of a string with asterisks, keeping the first
// visibleStart and last visibleEnd characters. Strings too short to hide
// anything are returned unchanged.
func Mask(s string, visibleStart, visibleEnd int) string {
	runes := []rune(s)
	if len(runes) <= visibleStart+visibleEnd {
		return s
	}

	masked := len(runes) - visibleStart - visibleEnd
	return string(runes[:visibleStart]) +
		strings.Repeat("*", masked) +
		string(runes[len(runes)-visibleEnd:])
}

// ExtractNumbers returns every integer or decimal number found in the
// string, including negatives, in order of appearance.
func ExtractNumbers(s string) []string {
	return numberRe.FindAllString(s, -1)
}

// ContainsAny reports whether the string contains at least one of the
// given substrings.
func ContainsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the string contains every one of the given
// substrings.
func ContainsAll(s string, substrings []string) bool {
	for _, sub := range substrings {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
