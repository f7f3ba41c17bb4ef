package codec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
// With Strict set, Unmarshal rejects object keys that do not map to a field,
// which catches misspelled rule keys such as "limt".
type GoJSON struct {
	Strict bool
}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (c GoJSON) Unmarshal(data []byte, v any) error {
	if !c.Strict {
		return gojson.Unmarshal(data, v)
	}
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Name returns the unique name of the codec ("go-json" or "go-json-strict").
func (c GoJSON) Name() string {
	if c.Strict {
		return "go-json-strict"
	}
	return "go-json"
}
