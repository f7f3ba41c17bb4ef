package recid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/hupe1980/recid/formkey"
	"github.com/hupe1980/recid/internal/fold"
)

// ID is an identifier that may be an EditorID or name, a FormID, a FormKey or
// a ModKey. Check Kind before calling a variant accessor: accessors panic with
// a *WrongVariantError when called on the wrong Kind. The As* methods are the
// checked alternative.
//
// IDs are immutable values. The zero ID is KindInvalid with no text.
type ID struct {
	kind     Kind
	text     string
	hasText  bool
	formID   formkey.FormID
	formKey  formkey.FormKey
	wildcard bool
	limit    FieldMask
	hash     uint64
}

// NewName returns a name ID. If wildcard is set the ID matches any value that
// contains text rather than only equal values. limit is intersected with
// MaskAllString. NewName panics if text is empty.
func NewName(text string, wildcard bool, limit FieldMask) ID {
	if text == "" {
		panic("recid: name identifier requires text")
	}
	return newTextID(KindName, text, wildcard, limit)
}

// Name returns an exact-match name ID that may match any string field.
func Name(text string) ID { return NewName(text, false, MaskAllString) }

// Wildcard returns a contains-match name ID that may match any string field.
func Wildcard(text string) ID { return NewName(text, true, MaskAllString) }

// NewInvalid returns an invalid ID that keeps text for diagnostics.
func NewInvalid(text string) ID {
	return newTextID(KindInvalid, text, false, MaskAllString)
}

// NewFormID returns a FormID ID. limit is intersected with MaskAllFormKey.
func NewFormID(id formkey.FormID, limit FieldMask) ID {
	v := ID{kind: KindFormID, formID: id, limit: limit & KindFormID.validMask()}
	v.hash = v.computeHash()
	return v
}

// OfFormID returns a FormID ID with the widest FormID limit.
func OfFormID(id formkey.FormID) ID { return NewFormID(id, MaskAllFormKey) }

// NewFormKey returns a FormKey ID. limit is intersected with MaskAllFormKey.
func NewFormKey(fk formkey.FormKey, limit FieldMask) ID {
	v := ID{kind: KindFormKey, formKey: fk, limit: limit & KindFormKey.validMask()}
	v.hash = v.computeHash()
	return v
}

// OfFormKey returns a FormKey ID with the widest FormKey limit.
func OfFormKey(fk formkey.FormKey) ID { return NewFormKey(fk, MaskAllFormKey) }

// NewModKey returns a ModKey ID. limit is intersected with MaskAllModKey.
func NewModKey(mk formkey.ModKey, limit FieldMask) ID {
	v := ID{kind: KindModKey, formKey: formkey.FormKey{ModKey: mk}, limit: limit & KindModKey.validMask()}
	v.hash = v.computeHash()
	return v
}

// OfModKey returns a ModKey ID with the widest ModKey limit.
func OfModKey(mk formkey.ModKey) ID { return NewModKey(mk, MaskAllModKey) }

func newTextID(kind Kind, text string, wildcard bool, limit FieldMask) ID {
	v := ID{
		kind:     kind,
		text:     text,
		hasText:  true,
		wildcard: wildcard,
		limit:    limit & kind.validMask(),
	}
	v.hash = v.computeHash()
	return v
}

// Kind returns the variant held by the ID.
func (id ID) Kind() Kind { return id.kind }

// IsValid reports whether the ID is not KindInvalid.
func (id ID) IsValid() bool { return id.kind != KindInvalid }

// IsNull reports whether the ID is invalid and carries no text, as produced by
// classifying an empty input.
func (id ID) IsNull() bool { return id.kind == KindInvalid && !id.hasText }

// IsWildcard reports whether a name ID matches by containment.
func (id ID) IsWildcard() bool { return id.wildcard }

// LimitTo returns the fields this ID is allowed to match against.
func (id ID) LimitTo() FieldMask { return id.limit }

// Hash returns a hash consistent with Equal.
func (id ID) Hash() uint64 { return id.hash }

// WithWildcard returns a copy of a name ID with the wildcard flag set to w.
// Other kinds are returned unchanged.
func (id ID) WithWildcard(w bool) ID {
	if id.kind != KindName || id.wildcard == w {
		return id
	}
	id.wildcard = w
	return id
}

// WithLimit returns a copy of the ID limited to limit, intersected with the
// fields valid for its Kind.
func (id ID) WithLimit(limit FieldMask) ID {
	id.limit = limit & id.kind.validMask()
	return id
}

// Name returns the text of a name ID.
func (id ID) Name() string {
	id.must(KindName)
	return id.text
}

// FormID returns the key of a FormID ID.
func (id ID) FormID() formkey.FormID {
	id.must(KindFormID)
	return id.formID
}

// FormKey returns the key of a FormKey ID.
func (id ID) FormKey() formkey.FormKey {
	id.must(KindFormKey)
	return id.formKey
}

// ModKey returns the key of a ModKey ID.
func (id ID) ModKey() formkey.ModKey {
	id.must(KindModKey)
	return id.formKey.ModKey
}

// InvalidText returns the original text of an invalid ID and whether there was
// any.
func (id ID) InvalidText() (string, bool) {
	id.must(KindInvalid)
	return id.text, id.hasText
}

// AsName returns the text of a name ID.
func (id ID) AsName() (string, bool) {
	return id.text, id.kind == KindName
}

// AsFormID returns the key of a FormID ID.
func (id ID) AsFormID() (formkey.FormID, bool) {
	return id.formID, id.kind == KindFormID
}

// AsFormKey returns the key of a FormKey ID.
func (id ID) AsFormKey() (formkey.FormKey, bool) {
	if id.kind != KindFormKey {
		return formkey.FormKey{}, false
	}
	return id.formKey, true
}

// AsModKey returns the key of a ModKey ID.
func (id ID) AsModKey() (formkey.ModKey, bool) {
	if id.kind != KindModKey {
		return formkey.ModKey{}, false
	}
	return id.formKey.ModKey, true
}

func (id ID) must(k Kind) {
	if id.kind != k {
		panic(&WrongVariantError{Want: k, Got: id.kind})
	}
}

// Equal reports whether id and other are the same identifier: same Kind, same
// limit, same wildcard flag and equal payload. Strings and plugin names compare
// case-insensitively.
func (id ID) Equal(other ID) bool {
	if id.kind != other.kind || id.limit != other.limit || id.wildcard != other.wildcard {
		return false
	}
	if id.hash != other.hash {
		return false
	}
	switch id.kind {
	case KindName:
		return fold.Equal(id.text, other.text)
	case KindInvalid:
		return id.hasText == other.hasText && fold.Equal(id.text, other.text)
	case KindFormID:
		return id.formID == other.formID
	case KindFormKey:
		return id.formKey.Equal(other.formKey)
	case KindModKey:
		return id.formKey.ModKey.Equal(other.formKey.ModKey)
	}
	return false
}

// MatchesFormKey reports whether a FormKey ID equals fk, or a ModKey ID equals
// the plugin of fk. The limit is not consulted.
func (id ID) MatchesFormKey(fk formkey.FormKey) bool {
	switch id.kind {
	case KindFormKey:
		return id.formKey.Equal(fk)
	case KindModKey:
		return id.formKey.ModKey.Equal(fk.ModKey)
	}
	return false
}

// MatchesModKey reports whether a ModKey ID equals mk. The limit is not
// consulted.
func (id ID) MatchesModKey(mk formkey.ModKey) bool {
	return id.kind == KindModKey && id.formKey.ModKey.Equal(mk)
}

// MatchesString reports whether a name (or invalid, text carrying) ID matches
// s: by equality, or by containment for wildcards. Comparison ignores case.
// The limit is not consulted.
func (id ID) MatchesString(s string) bool {
	if s == "" || !id.hasText {
		return false
	}
	if id.wildcard {
		return fold.Contains(s, id.text)
	}
	return fold.Equal(id.text, s)
}

// EqualFormKey is MatchesFormKey restricted to IDs whose limit includes field.
func (id ID) EqualFormKey(fk formkey.FormKey, field Field) bool {
	return id.limit.Has(field) && id.MatchesFormKey(fk)
}

// EqualModKey is MatchesModKey restricted to IDs whose limit includes field.
func (id ID) EqualModKey(mk formkey.ModKey, field Field) bool {
	return id.limit.Has(field) && id.MatchesModKey(mk)
}

// EqualString is MatchesString restricted to IDs whose limit includes field.
func (id ID) EqualString(s string, field Field) bool {
	return id.limit.Has(field) && id.MatchesString(s)
}

// Format returns the ID as text using f for FormKeys. The Kind is not part of
// the output; classifying the result yields an equal key for FormKey and
// ModKey IDs. Wildcard names are prefixed with '*'.
func (id ID) Format(f formkey.Format) string {
	switch id.kind {
	case KindName:
		if id.wildcard {
			return "*" + id.text
		}
		return id.text
	case KindFormID:
		return id.formID.String()
	case KindFormKey:
		return id.formKey.Format(f)
	case KindModKey:
		return id.formKey.ModKey.FileName()
	default:
		if id.wildcard {
			return "*" + id.text
		}
		return id.text
	}
}

func (id ID) String() string { return id.Format(formkey.Default) }

// GoString is used by %#v and debugging output.
func (id ID) GoString() string {
	if id.IsNull() {
		return "Invalid: null"
	}
	return id.kind.String() + ": " + id.Format(formkey.Default)
}

func (id ID) computeHash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(id.kind)})
	switch id.kind {
	case KindName, KindInvalid:
		_, _ = d.WriteString(fold.String(id.text))
	case KindFormID:
		_, _ = d.Write(binary.LittleEndian.AppendUint32(nil, uint32(id.formID)))
	case KindFormKey, KindModKey:
		_, _ = d.WriteString(fold.String(id.formKey.ModKey.Name))
		_, _ = d.Write([]byte{byte(id.formKey.ModKey.Type)})
		_, _ = d.Write(binary.LittleEndian.AppendUint32(nil, id.formKey.ID))
	}
	return d.Sum64()
}
