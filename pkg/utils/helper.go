package utils

import (
	"strings"
	"unicode/utf8"
)

func ToPointer[T any](v T) *T {
	return &v
}

func ContainsString(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// CleanToValidUTF8 drops invalid byte sequences, which Postgres rejects.
func CleanToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}

// NormalizeSymbol upper-cases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
