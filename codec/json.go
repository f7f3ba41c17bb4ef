package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the standard-library JSON codec. Types with custom text or JSON
// methods, such as formkey.FormKey, decode identically with either codec.
type JSON struct {
	Strict bool
}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v. See GoJSON for Strict.
func (c JSON) Unmarshal(data []byte, v any) error {
	if !c.Strict {
		return json.Unmarshal(data, v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Name returns the unique name of the codec ("json" or "json-strict").
func (c JSON) Name() string {
	if c.Strict {
		return "json-strict"
	}
	return "json"
}

// Default is the codec used when none is configured.
var Default Codec = GoJSON{}
