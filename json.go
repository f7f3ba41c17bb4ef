package recid

import (
	"bytes"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/recid/formkey"
)

var jsonNull = []byte("null")

// Converter encodes IDs as text and JSON with explicit options. The zero
// Converter uses the default format and no FormID resolver.
type Converter struct {
	// Format is used to render FormKeys.
	Format formkey.Format
	// Resolver, if set, upgrades decoded FormIDs to FormKeys.
	Resolver FormIDResolver
}

// DefaultConverter is used by the ID text and JSON methods.
var DefaultConverter = Converter{}

// FormatID renders id as text.
func (c Converter) FormatID(id ID) string {
	return id.Format(c.Format)
}

// ParseID classifies s. A leading '*' on a name marks it as a wildcard.
func (c Converter) ParseID(s string) ID {
	cl := defaultClassifier
	if c.Resolver != nil {
		cl = NewClassifier(WithFormIDResolver(c.Resolver))
	}
	if rest, ok := strings.CutPrefix(s, "*"); ok && rest != "" {
		id, _, _ := cl.Classify(rest)
		if id.Kind() == KindName {
			return id.WithWildcard(true)
		}
		return NewInvalid(s)
	}
	id, _, _ := cl.Classify(s)
	return id
}

// Marshal returns the JSON encoding of id. The null ID encodes as null.
func (c Converter) Marshal(id ID) ([]byte, error) {
	if id.IsNull() {
		return jsonNull, nil
	}
	return gojson.Marshal(c.FormatID(id))
}

// Unmarshal decodes a JSON string or null into an ID.
func (c Converter) Unmarshal(data []byte) (ID, error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return ID{}, nil
	}
	var s string
	if err := gojson.Unmarshal(data, &s); err != nil {
		return ID{}, err
	}
	return c.ParseID(s), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(DefaultConverter.FormatID(id)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	*id = DefaultConverter.ParseID(string(text))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return DefaultConverter.Marshal(id)
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	v, err := DefaultConverter.Unmarshal(data)
	if err != nil {
		return err
	}
	*id = v
	return nil
}
