package rules

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recid/codec"
)

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func lz4Bytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		comp   Compression
	}{
		{"weapons.json", FormatJSON, CompressionNone},
		{"dir/Weapons.JSON", FormatJSON, CompressionNone},
		{"armor.jsonl", FormatJSONLines, CompressionNone},
		{"armor.ndjson", FormatJSONLines, CompressionNone},
		{"armor.yaml", FormatYAML, CompressionNone},
		{"armor.yml.zst", FormatYAML, CompressionZSTD},
		{"armor.jsonl.lz4", FormatJSONLines, CompressionLZ4},
		{"readme.txt", FormatUnknown, CompressionNone},
		{"archive.zst", FormatUnknown, CompressionZSTD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, comp := Detect(tt.name)
			assert.Equal(t, tt.format, format)
			assert.Equal(t, tt.comp, comp)
			assert.Equal(t, tt.format != FormatUnknown, Supported(tt.name))
		})
	}
}

func TestDecode(t *testing.T) {
	want := []Rule{
		{ID: "IronSword", Value: "iron"},
		{ID: "*sword", Value: "swords", Limit: "editorid"},
	}

	jsonDoc := []byte(`{"rules":[{"id":"IronSword","value":"iron"},{"id":"*sword","value":"swords","limit":"editorid"}]}`)
	linesDoc := []byte("{\"id\":\"IronSword\",\"value\":\"iron\"}\n\n# comment\n{\"id\":\"*sword\",\"value\":\"swords\",\"limit\":\"editorid\"}\n")
	yamlDoc := []byte("rules:\n  - id: IronSword\n    value: iron\n  - id: \"*sword\"\n    value: swords\n    limit: editorid\n")

	tests := []struct {
		name string
		data []byte
	}{
		{"a.json", jsonDoc},
		{"a.jsonl", linesDoc},
		{"a.yaml", yamlDoc},
		{"a.json.zst", zstdBytes(t, jsonDoc)},
		{"a.yml.zst", zstdBytes(t, yamlDoc)},
		{"a.jsonl.lz4", lz4Bytes(t, linesDoc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, c := range []codec.Codec{nil, codec.JSON{}, codec.GoJSON{}} {
				got, err := Decode(tt.name, tt.data, c)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("rules.txt", []byte("{}"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Decode("bad.json", []byte(`{"rules":[`), nil)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "bad.json", de.Source)
	assert.Zero(t, de.Line)

	_, err = Decode("bad.jsonl", []byte("{\"id\":\"a\"}\nnot json\n"), nil)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 2, de.Line)
	assert.Contains(t, err.Error(), "bad.jsonl:2")

	_, err = Decode("bad.json.zst", []byte("not zstd"), nil)
	require.ErrorAs(t, err, &de)

	got, err := Decode("empty.json", []byte("  \n"), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
