package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// UF is a two-character state code, stored upper-case.
type UF string

const ufLength = 2

// NewUF trims and upper-cases s and requires exactly two characters.
func NewUF(s string) (UF, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if n := utf8.RuneCountInString(s); n != ufLength {
		return "", fmt.Errorf("uf must be exactly %d characters (got %d)", ufLength, n)
	}
	return UF(s), nil
}

// String returns the underlying string value.
func (u UF) String() string {
	return string(u)
}
