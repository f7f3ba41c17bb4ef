// Package fold provides Unicode case folding for case-insensitive identifier
// comparisons.
//
// A cases.Caser is stateful and must not be shared between goroutines, so
// non-ASCII input goes through a pool of casers. ASCII input, which is the
// overwhelming majority of record names, is folded without allocation when it
// is already lower case.
package fold

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var casers = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// String returns the case-folded form of s.
func String(s string) string {
	ascii, lower := scan(s)
	if ascii {
		if lower {
			return s
		}
		return asciiLower(s)
	}

	c := casers.Get().(*cases.Caser)
	defer casers.Put(c)
	c.Reset()
	return c.String(s)
}

// Equal reports whether a and b are equal under case folding.
func Equal(a, b string) bool {
	if len(a) == len(b) && a == b {
		return true
	}
	return String(a) == String(b)
}

// Contains reports whether sub occurs in s under case folding.
func Contains(s, sub string) bool {
	return strings.Contains(String(s), String(sub))
}

// Compare compares a and b ordinally after case folding.
func Compare(a, b string) int {
	return strings.Compare(String(a), String(b))
}

// TrimFirst removes the first rune of s.
func TrimFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] < utf8.RuneSelf {
		return s[1:]
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[size:]
}

func scan(s string) (ascii, lower bool) {
	lower = true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return false, false
		}
		if 'A' <= c && c <= 'Z' {
			lower = false
		}
	}
	return true, lower
}

func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
