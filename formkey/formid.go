package formkey

import (
	"fmt"
	"strconv"
	"strings"
)

// FormID is a raw 32-bit record key. The zero value is the null FormID.
type FormID uint32

// MasterIndex returns the load-order byte of the FormID.
func (id FormID) MasterIndex() uint8 { return uint8(id >> 24) }

// LocalID returns the low 24 bits of the FormID.
func (id FormID) LocalID() uint32 { return uint32(id) & MaxLocalID }

// IsNull reports whether id is zero.
func (id FormID) IsNull() bool { return id == 0 }

// String returns the FormID as "0x" followed by 8 upper-case hex digits.
func (id FormID) String() string {
	return fmt.Sprintf("0x%08X", uint32(id))
}

// ParseFormID parses exactly 8 hex digits with an optional "0x" prefix.
// Leading zeros are required: "0x1" is not a FormID.
func ParseFormID(s string) (FormID, error) {
	digits := trimHexPrefix(s)
	if len(digits) != 8 || !isHex(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormID, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidFormID, s, err)
	}
	return FormID(v), nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool {
		return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
	}) < 0
}
