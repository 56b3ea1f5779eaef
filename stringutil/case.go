// Package stringutil provides string case conversion and small text
// helpers: snake/camel/pascal/kebab conversion, truncation, slugs,
// masking, random strings and UUID identifiers.
package stringutil

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	separators    = regexp.MustCompile(`[\s_-]+`)
)

// ToSnake converts camelCase, PascalCase, kebab-case or space-separated
// words to snake_case.
func ToSnake(s string) string {
	s = camelBoundary.ReplaceAllString(s, "${1}_${2}")
	s = separators.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// ToKebab converts camelCase, PascalCase, snake_case or space-separated
// words to kebab-case.
func ToKebab(s string) string {
	return strings.ReplaceAll(ToSnake(s), "_", "-")
}

// ToCamel converts snake_case, kebab-case or space-separated words to
// camelCase.
func ToCamel(s string) string {
	words := SplitWords(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(words[0])
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// ToPascal converts snake_case, kebab-case or space-separated words to
// PascalCase. Word boundaries inside a camelCase run are not split, so
// "camelCase" becomes "Camelcase".
func ToPascal(s string) string {
	var b strings.Builder
	for _, word := range separators.Split(s, -1) {
		b.WriteString(capitalize(strings.ToLower(word)))
	}
	return b.String()
}

// SplitWords splits camelCase, snake_case, kebab-case or space-separated
// text into lowercase words.
func SplitWords(s string) []string {
	words := []string{}
	for _, word := range strings.Split(ToSnake(s), "_") {
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

func capitalize(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return ""
	}
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
