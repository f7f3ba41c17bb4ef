package formkey

import (
	"bytes"

	gojson "github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// MarshalText implements encoding.TextMarshaler using the Default format.
func (fk FormKey) MarshalText() ([]byte, error) {
	return []byte(fk.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// null FormKey.
func (fk *FormKey) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*fk = FormKey{}
		return nil
	}
	v, err := ParseFormKey(string(text))
	if err != nil {
		return err
	}
	*fk = v
	return nil
}

// MarshalJSON writes the null FormKey as JSON null.
func (fk FormKey) MarshalJSON() ([]byte, error) {
	if fk.IsNull() {
		return jsonNull, nil
	}
	return gojson.Marshal(fk.String())
}

// UnmarshalJSON accepts a FormKey string or null.
func (fk *FormKey) UnmarshalJSON(data []byte) error {
	s, null, err := decodeString(data)
	if err != nil {
		return err
	}
	if null {
		*fk = FormKey{}
		return nil
	}
	return fk.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (m ModKey) MarshalText() ([]byte, error) {
	return []byte(m.FileName()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// null ModKey.
func (m *ModKey) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*m = ModKey{}
		return nil
	}
	v, err := ParseModKey(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalJSON writes the null ModKey as JSON null.
func (m ModKey) MarshalJSON() ([]byte, error) {
	if m.IsNull() {
		return jsonNull, nil
	}
	return gojson.Marshal(m.FileName())
}

// UnmarshalJSON accepts a plugin file name or null.
func (m *ModKey) UnmarshalJSON(data []byte) error {
	s, null, err := decodeString(data)
	if err != nil {
		return err
	}
	if null {
		*m = ModKey{}
		return nil
	}
	return m.UnmarshalText([]byte(s))
}

// MarshalText implements encoding.TextMarshaler.
func (id FormID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *FormID) UnmarshalText(text []byte) error {
	v, err := ParseFormID(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func decodeString(data []byte) (s string, null bool, err error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return "", true, nil
	}
	if err := gojson.Unmarshal(data, &s); err != nil {
		return "", false, err
	}
	return s, false, nil
}
