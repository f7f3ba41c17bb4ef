package recid

// keywordMask is the set of fields a resolved keyword record is tested on.
const keywordMask = MaskBasic

// MatchRecord reports whether id matches rec on any of the fields in mask.
//
// If field is not FieldNone, rec is being tested as a sub-record reached
// through field: id must allow field and every comparison is made as field.
// Keyword references are followed through resolver. A nil resolver compares
// keyword FormKeys with FormKey IDs directly; with a resolver, references it
// can not resolve are skipped.
//
// FormID and Invalid IDs never match.
func (id ID) MatchRecord(rec Record, mask FieldMask, resolver KeywordResolver, field Field) bool {
	if rec == nil || mask == MaskNone || !id.kind.Indexable() {
		return false
	}

	sub := field != FieldNone
	if sub && !id.limit.Has(field) {
		return false
	}
	as := func(f Field) Field {
		if sub {
			return field
		}
		return f
	}

	switch id.kind {
	case KindName:
		if mask.Has(FieldEditorID) && id.EqualString(rec.EditorID(), as(FieldEditorID)) {
			return true
		}
		if named, ok := rec.(NamedRecord); ok && mask.Has(FieldName) &&
			id.EqualString(named.Name(), as(FieldName)) {
			return true
		}
	case KindFormKey:
		if mask.Has(FieldFormKey) && id.EqualFormKey(rec.FormKey(), as(FieldFormKey)) {
			return true
		}
	case KindModKey:
		if mask.Has(FieldModKey) && id.EqualModKey(rec.FormKey().ModKey, as(FieldModKey)) {
			return true
		}
	}

	if sub || !mask.Has(FieldKeywords) || !id.limit.Has(FieldKeywords) {
		return false
	}
	kr, ok := rec.(KeywordedRecord)
	if !ok {
		return false
	}
	for _, ref := range kr.Keywords() {
		if resolver == nil {
			if id.kind == KindFormKey && id.formKey.Equal(ref) {
				return true
			}
			continue
		}
		kw, ok := resolver.ResolveKeyword(ref)
		if !ok || kw == nil {
			continue
		}
		if id.MatchRecord(kw, keywordMask, nil, FieldKeywords) {
			return true
		}
	}
	return false
}
