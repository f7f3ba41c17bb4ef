package formkey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxLocalID is the largest local ID a FormKey can hold (6 hex digits).
const MaxLocalID = 0xFFFFFF

// FormKey identifies a record by its home plugin and local ID.
// The zero value is the null FormKey.
type FormKey struct {
	ModKey ModKey
	ID     uint32
}

// New returns a FormKey for the local id inside mod.
func New(mod ModKey, id uint32) FormKey {
	return FormKey{ModKey: mod, ID: id & MaxLocalID}
}

// MustParse is like ParseFormKey but panics on error. Intended for tests and
// package-level constants.
func MustParse(s string) FormKey {
	fk, err := ParseFormKey(s)
	if err != nil {
		panic(err)
	}
	return fk
}

// IsNull reports whether fk has no ModKey.
func (fk FormKey) IsNull() bool { return fk.ModKey.IsNull() }

// Equal reports whether fk and other name the same record.
func (fk FormKey) Equal(other FormKey) bool {
	return fk.ID == other.ID && fk.ModKey.Equal(other.ModKey)
}

// Fold returns fk with a case-folded mod name. Folded FormKeys compare with ==.
func (fk FormKey) Fold() FormKey {
	return FormKey{ModKey: fk.ModKey.Fold(), ID: fk.ID}
}

// Format renders fk using the given format flags.
func (fk FormKey) Format(f Format) string {
	if fk.IsNull() {
		return ""
	}

	var sb strings.Builder
	if f.Has(HexPrefix) {
		sb.WriteString("0x")
	}
	if f.Has(RemoveLeadingZeros) {
		sb.WriteString(strings.ToUpper(strconv.FormatUint(uint64(fk.ID), 16)))
	} else {
		fmt.Fprintf(&sb, "%06X", fk.ID)
	}
	if f.Has(SeparatorTilde) {
		sb.WriteByte('~')
	} else {
		sb.WriteByte(':')
	}
	sb.WriteString(fk.ModKey.FileName())
	return sb.String()
}

func (fk FormKey) String() string { return fk.Format(Default) }

var (
	formKeyPattern = regexp.MustCompile(`^(?:0x)?([0-9A-Fa-f]{1,6})[:~]([^*\\|:"<>?/\x00-\x1F]+)\.([eE][sS][mMpPlL])$`)
	localIDPattern = regexp.MustCompile(`^[0-9A-Fa-f]{1,6}`)
)

// LooksLikeFormKey reports whether s has the shape of a FormKey string, without
// checking that its parts are valid.
func LooksLikeFormKey(s string) bool {
	return formKeyPattern.MatchString(s)
}

// ParseFormKey parses "<id><sep><plugin>", where id is 1 to 6 hex digits with
// an optional "0x" prefix and sep is ':' or '~'. More than 6 digits never
// parse, so the master index byte of a FormID can not leak into a FormKey.
func ParseFormKey(s string) (FormKey, error) {
	m := formKeyPattern.FindStringSubmatch(s)
	if m == nil {
		return FormKey{}, fmt.Errorf("%w: %q", ErrInvalidFormKey, s)
	}
	id, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return FormKey{}, fmt.Errorf("%w: %q: %w", ErrInvalidFormKey, s, err)
	}
	t, ok := ModTypeFromExtension(m[3])
	if !ok {
		return FormKey{}, fmt.Errorf("%w: %q: unknown extension", ErrInvalidFormKey, s)
	}
	if !ValidModName(m[2]) {
		return FormKey{}, fmt.Errorf("%w: %q: invalid plugin name", ErrInvalidFormKey, s)
	}
	return FormKey{ModKey: ModKey{Name: m[2], Type: t}, ID: uint32(id)}, nil
}

// FixFormKey left-pads the leading run of 1 to 6 hex digits in s to 6 digits.
// The rest of the string is not validated.
func FixFormKey(s string) string {
	return localIDPattern.ReplaceAllStringFunc(s, func(digits string) string {
		return strings.Repeat("0", 6-len(digits)) + digits
	})
}
