package recid

// Kind identifies which variant an ID holds.
type Kind uint8

const (
	// KindInvalid is an input that could not be classified. It is the zero
	// Kind, so the zero ID is invalid.
	KindInvalid Kind = iota
	// KindName is an EditorID or display name, optionally a wildcard.
	KindName
	// KindFormID is a bare numeric key. It is not indexable.
	KindFormID
	// KindFormKey is a composite plugin + local ID key.
	KindFormKey
	// KindModKey is a plugin (container) key.
	KindModKey
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "Invalid"
	case KindName:
		return "Name"
	case KindFormID:
		return "FormID"
	case KindFormKey:
		return "FormKey"
	case KindModKey:
		return "ModKey"
	default:
		return "Unknown"
	}
}

// validMask is the set of fields an ID of kind k can ever match.
func (k Kind) validMask() FieldMask {
	switch k {
	case KindName, KindInvalid:
		return MaskAllString
	case KindFormID, KindFormKey:
		return MaskAllFormKey
	case KindModKey:
		return MaskAllModKey
	default:
		return MaskNone
	}
}

// Indexable reports whether IDs of this kind can be registered in an index.
func (k Kind) Indexable() bool {
	return k == KindName || k == KindFormKey || k == KindModKey
}
