package formkey

import (
	"fmt"
	"strings"
)

// Format controls how a FormKey is rendered.
type Format uint8

const (
	// Default renders "0001A3:MyMod.esm".
	Default Format = 0
	// HexPrefix prepends "0x" to the local ID.
	HexPrefix Format = 1 << 0
	// RemoveLeadingZeros drops zero padding from the local ID.
	RemoveLeadingZeros Format = 1 << 1
	// SeparatorTilde uses '~' instead of ':'.
	SeparatorTilde Format = 1 << 2
	// SKSEDefault is the convention of SKSE plugin configuration files,
	// "0x1A3~MyMod.esm".
	SKSEDefault = HexPrefix | SeparatorTilde | RemoveLeadingZeros
)

// Has reports whether all flags in flag are set.
func (f Format) Has(flag Format) bool { return f&flag == flag }

func (f Format) String() string {
	if f == Default {
		return "default"
	}
	if f == SKSEDefault {
		return "skse"
	}
	var parts []string
	if f.Has(HexPrefix) {
		parts = append(parts, "hex")
	}
	if f.Has(RemoveLeadingZeros) {
		parts = append(parts, "trim")
	}
	if f.Has(SeparatorTilde) {
		parts = append(parts, "tilde")
	}
	return strings.Join(parts, "|")
}

// ParseFormat parses the names produced by Format.String. Flags may be joined
// with '|', ',' or '+'.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "default":
		return Default, nil
	case "skse":
		return SKSEDefault, nil
	}

	var f Format
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' || r == '+' }) {
		switch strings.TrimSpace(part) {
		case "hex":
			f |= HexPrefix
		case "trim":
			f |= RemoveLeadingZeros
		case "tilde":
			f |= SeparatorTilde
		default:
			return Default, fmt.Errorf("formkey: unknown format flag %q", part)
		}
	}
	return f, nil
}
