package formkey

import (
	"fmt"
	"strings"

	"github.com/hupe1980/recid/internal/fold"
)

// ModType is the plugin kind encoded by the file extension.
type ModType uint8

const (
	// Plugin is a regular ".esp" plugin.
	Plugin ModType = iota
	// Master is a ".esm" master file.
	Master
	// Light is a ".esl" light master.
	Light
)

// Extension returns the lower-case file extension without the dot.
func (t ModType) Extension() string {
	switch t {
	case Master:
		return "esm"
	case Light:
		return "esl"
	default:
		return "esp"
	}
}

func (t ModType) String() string { return t.Extension() }

// ModTypeFromExtension maps "esm", "esp" or "esl" (any case, no dot) to a
// ModType.
func ModTypeFromExtension(ext string) (ModType, bool) {
	switch strings.ToLower(ext) {
	case "esm":
		return Master, true
	case "esp":
		return Plugin, true
	case "esl":
		return Light, true
	}
	return 0, false
}

// ModKey identifies a plugin file. The zero value is the null ModKey.
type ModKey struct {
	Name string
	Type ModType
}

// NewModKey returns a ModKey for name and type.
func NewModKey(name string, t ModType) ModKey {
	return ModKey{Name: name, Type: t}
}

// IsNull reports whether the ModKey has no name.
func (m ModKey) IsNull() bool { return m.Name == "" }

// Equal reports whether m and other name the same plugin, ignoring case.
func (m ModKey) Equal(other ModKey) bool {
	return m.Type == other.Type && fold.Equal(m.Name, other.Name)
}

// Fold returns m with a case-folded name. Folded ModKeys compare with ==.
func (m ModKey) Fold() ModKey {
	return ModKey{Name: fold.String(m.Name), Type: m.Type}
}

// FileName returns the plugin file name, e.g. "Skyrim.esm".
func (m ModKey) FileName() string {
	if m.IsNull() {
		return ""
	}
	return m.Name + "." + m.Type.Extension()
}

func (m ModKey) String() string { return m.FileName() }

// ParseModKey parses a plugin file name such as "Skyrim.esm".
func ParseModKey(s string) (ModKey, error) {
	dot := strings.LastIndexByte(s, '.')
	if dot <= 0 {
		return ModKey{}, fmt.Errorf("%w: %q", ErrInvalidModKey, s)
	}
	t, ok := ModTypeFromExtension(s[dot+1:])
	if !ok {
		return ModKey{}, fmt.Errorf("%w: %q: unknown extension", ErrInvalidModKey, s)
	}
	name := s[:dot]
	if !ValidModName(name) {
		return ModKey{}, fmt.Errorf("%w: %q: invalid name", ErrInvalidModKey, s)
	}
	return ModKey{Name: name, Type: t}, nil
}

// ValidModName reports whether name can be used as a plugin name. Names must be
// non-empty and must not contain path separators, wildcards or control
// characters.
func ValidModName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x20 {
			return false
		}
		switch c {
		case '*', '\\', '|', ':', '"', '<', '>', '?', '/':
			return false
		}
	}
	return true
}
