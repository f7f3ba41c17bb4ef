package recid

import (
	"fmt"
	"strings"
)

// Field names a single attribute of a record that an ID is compared against.
type Field uint8

const (
	// FieldNone means the comparison is not scoped to a sub-property.
	FieldNone Field = 0
	// FieldFormKey is the record's own FormKey.
	FieldFormKey Field = 1 << 0
	// FieldEditorID is the record's EditorID.
	FieldEditorID Field = 1 << 1
	// FieldModKey is the plugin the record comes from.
	FieldModKey Field = 1 << 2
	// FieldName is the record's display name.
	FieldName Field = 1 << 3
	// FieldKeywords is the set of keyword records linked from the record.
	FieldKeywords Field = 1 << 4
)

func (f Field) String() string {
	switch f {
	case FieldNone:
		return "none"
	case FieldFormKey:
		return "formkey"
	case FieldEditorID:
		return "editorid"
	case FieldModKey:
		return "modkey"
	case FieldName:
		return "name"
	case FieldKeywords:
		return "keywords"
	default:
		return fmt.Sprintf("field(%d)", uint8(f))
	}
}

// FieldMask is a set of Fields.
type FieldMask uint8

// Predefined masks. The MaskAll* masks are the widest limit an ID of the
// matching kind can carry.
const (
	MaskNone       FieldMask = 0
	MaskBasic                = FieldMask(FieldFormKey | FieldEditorID | FieldModKey)
	MaskDefault              = MaskBasic | FieldMask(FieldName|FieldKeywords)
	MaskAll                  = MaskDefault
	MaskAllFormKey           = FieldMask(FieldFormKey | FieldKeywords)
	MaskAllModKey            = FieldMask(FieldModKey | FieldKeywords)
	MaskAllString            = FieldMask(FieldEditorID | FieldName | FieldKeywords)
)

var allFields = [...]Field{FieldFormKey, FieldEditorID, FieldModKey, FieldName, FieldKeywords}

// Mask returns the mask containing only f.
func (f Field) Mask() FieldMask { return FieldMask(f) }

// Has reports whether f is in the mask. FieldNone is never in a mask.
func (m FieldMask) Has(f Field) bool {
	return f != FieldNone && m&FieldMask(f) != 0
}

// Fields returns the members of m in bit order.
func (m FieldMask) Fields() []Field {
	var out []Field
	for _, f := range allFields {
		if m.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (m FieldMask) String() string {
	switch m {
	case MaskNone:
		return "none"
	case MaskAll:
		return "all"
	}
	fields := m.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

// ParseFieldMask parses field names separated by commas, '|' or spaces.
// "all", "default", "basic", "none" and the empty string are accepted, as are
// the per-kind masks "allformkey", "allmodkey" and "allstring".
func ParseFieldMask(s string) (FieldMask, error) {
	var m FieldMask
	for _, part := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == '|' || r == ' ' || r == '\t'
	}) {
		switch part {
		case "none":
		case "all", "default":
			m |= MaskAll
		case "basic":
			m |= MaskBasic
		case "allformkey":
			m |= MaskAllFormKey
		case "allmodkey":
			m |= MaskAllModKey
		case "allstring":
			m |= MaskAllString
		case "formkey":
			m |= FieldMask(FieldFormKey)
		case "editorid":
			m |= FieldMask(FieldEditorID)
		case "modkey":
			m |= FieldMask(FieldModKey)
		case "name":
			m |= FieldMask(FieldName)
		case "keywords", "keyword":
			m |= FieldMask(FieldKeywords)
		default:
			return MaskNone, fmt.Errorf("recid: unknown field %q", part)
		}
	}
	return m, nil
}
