// Package codec selects the JSON implementation used to decode rule documents
// and record files.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, error) {
	switch name {
	case "json":
		return JSON{}, nil
	case "json-strict":
		return JSON{Strict: true}, nil
	case "go-json", "":
		return GoJSON{}, nil
	case "go-json-strict":
		return GoJSON{Strict: true}, nil
	default:
		return nil, fmt.Errorf("codec: unknown codec %q", name)
	}
}

// MustMarshal marshals v with c, or with Default if c is nil, and panics on
// failure. It is meant for tests and fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
