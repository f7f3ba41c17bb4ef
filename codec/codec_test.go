package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	ID    string   `json:"id"`
	Value string   `json:"value,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

func TestCodecsAgree(t *testing.T) {
	in := doc{ID: "0x1A3~Skyrim.esm", Value: "armor", Tags: []string{"a", "b"}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(in)
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"0x1A3~Skyrim.esm","value":"armor","tags":["a","b"]}`, string(b))

			var out doc
			require.NoError(t, c.Unmarshal(b, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestByName(t *testing.T) {
	c, err := ByName("json")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	c, err = ByName("")
	require.NoError(t, err)
	assert.Equal(t, "go-json", c.Name())

	for _, name := range []string{"json-strict", "go-json-strict"} {
		c, err = ByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}

	_, err = ByName("msgpack")
	assert.Error(t, err)
}

func TestStrict(t *testing.T) {
	data := []byte(`{"id":"IronSword","valeu":"iron"}`)

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		var out doc
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, "IronSword", out.ID)
	}

	for _, c := range []Codec{JSON{Strict: true}, GoJSON{Strict: true}} {
		t.Run(c.Name(), func(t *testing.T) {
			var out doc
			assert.Error(t, c.Unmarshal(data, &out))
			require.NoError(t, c.Unmarshal([]byte(`{"id":"IronSword"}`), &out))
		})
	}
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, `{"id":"x"}`, string(MustMarshal(nil, doc{ID: "x"})))
	assert.Panics(t, func() { MustMarshal(JSON{}, func() {}) })
}
