package stringutil

import (
	"math/rand/v2"
	"strings"
)

const (
	// Alphanumeric is the default charset for RandomString.
	Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	hexDigits = "0123456789abcdef"
)

// RandomString returns a random string of length n drawn from the given
// charset. An empty charset defaults to Alphanumeric.
func RandomString(n int, charset string) string {
	if charset == "" {
		charset = Alphanumeric
	}

	runes := []rune(charset)
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteRune(runes[rand.IntN(len(runes))])
	}
	return b.String()
}

// RandomHex returns a random lowercase hexadecimal string of length n.
func RandomHex(n int) string {
	return RandomString(n, hexDigits)
}
