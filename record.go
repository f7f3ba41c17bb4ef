package recid

import "github.com/hupe1980/recid/formkey"

// Record is a candidate record that identifiers are matched against. Its
// ModKey is the ModKey of its FormKey. An empty EditorID is absent.
type Record interface {
	FormKey() formkey.FormKey
	EditorID() string
}

// NamedRecord is a Record with a display name. An empty name is absent.
type NamedRecord interface {
	Record
	Name() string
}

// KeywordedRecord is a Record that references keyword records.
type KeywordedRecord interface {
	Record
	Keywords() []formkey.FormKey
}

// KeywordResolver looks up the keyword record referenced by ref. It must
// return (nil, false) for dangling references.
type KeywordResolver interface {
	ResolveKeyword(ref formkey.FormKey) (Record, bool)
}

// KeywordResolverFunc adapts a function to a KeywordResolver.
type KeywordResolverFunc func(ref formkey.FormKey) (Record, bool)

// ResolveKeyword implements KeywordResolver.
func (f KeywordResolverFunc) ResolveKeyword(ref formkey.FormKey) (Record, bool) { return f(ref) }

// StaticRecord is a plain Record value. It implements NamedRecord and
// KeywordedRecord.
type StaticRecord struct {
	Key         formkey.FormKey   `json:"formKey"`
	EDID        string            `json:"editorId,omitempty"`
	DisplayName string            `json:"name,omitempty"`
	KeywordRefs []formkey.FormKey `json:"keywords,omitempty"`
}

func (r *StaticRecord) FormKey() formkey.FormKey    { return r.Key }
func (r *StaticRecord) EditorID() string            { return r.EDID }
func (r *StaticRecord) Name() string                { return r.DisplayName }
func (r *StaticRecord) Keywords() []formkey.FormKey { return r.KeywordRefs }

// KeywordTable is a KeywordResolver backed by a map. Keys are matched
// case-insensitively on the plugin name.
type KeywordTable map[formkey.FormKey]Record

// NewKeywordTable returns a table holding records.
func NewKeywordTable(records ...Record) KeywordTable {
	t := make(KeywordTable, len(records))
	for _, r := range records {
		t.Put(r)
	}
	return t
}

// Put adds or replaces r under its FormKey.
func (t KeywordTable) Put(r Record) {
	t[r.FormKey().Fold()] = r
}

// ResolveKeyword implements KeywordResolver.
func (t KeywordTable) ResolveKeyword(ref formkey.FormKey) (Record, bool) {
	r, ok := t[ref.Fold()]
	return r, ok
}
