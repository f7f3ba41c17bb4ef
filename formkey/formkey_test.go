package formkey

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var skyrim = NewModKey("Skyrim", Master)

func TestParseFormKey(t *testing.T) {
	tests := []struct {
		in      string
		want    FormKey
		wantErr bool
	}{
		{in: "000101:Skyrim.esm", want: New(skyrim, 0x101)},
		{in: "101:Skyrim.esm", want: New(skyrim, 0x101)},
		{in: "0x000101:Skyrim.esm", want: New(skyrim, 0x101)},
		{in: "0x1a3~Skyrim.esm", want: New(skyrim, 0x1A3)},
		{in: "123456~Skyrim.ESM", want: New(skyrim, 0x123456)},
		{in: "800:My.Mod.esp", want: New(NewModKey("My.Mod", Plugin), 0x800)},
		{in: "1:Tiny.esl", want: New(NewModKey("Tiny", Light), 0x1)},
		{in: "00000001:Skyrim.esm", wantErr: true},
		{in: "0123456:Skyrim.esm", wantErr: true},
		{in: "101:Skyrim.esa", wantErr: true},
		{in: "101:Sky<rim.esm", wantErr: true},
		{in: "101-Skyrim.esm", wantErr: true},
		{in: "Skyrim.esm", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormKey(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFormKey)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestFormKey_Format(t *testing.T) {
	fk := New(skyrim, 0x1A3)
	assert.Equal(t, "0001A3:Skyrim.esm", fk.Format(Default))
	assert.Equal(t, "0x1A3~Skyrim.esm", fk.Format(SKSEDefault))
	assert.Equal(t, "0x0001A3:Skyrim.esm", fk.Format(HexPrefix))
	assert.Equal(t, "1A3:Skyrim.esm", fk.Format(RemoveLeadingZeros))
	assert.Equal(t, "0001A3~Skyrim.esm", fk.Format(SeparatorTilde))
	assert.Equal(t, "", FormKey{}.Format(SKSEDefault))
}

func TestFormKey_FormatRoundTrip(t *testing.T) {
	keys := []FormKey{
		New(skyrim, 0),
		New(skyrim, 0x1),
		New(NewModKey("Dawnguard", Master), 0x123456),
		New(NewModKey("Some Mod", Plugin), 0xFFFFFF),
	}
	for f := Format(0); f <= SKSEDefault; f++ {
		for _, fk := range keys {
			s := fk.Format(f)
			got, err := ParseFormKey(s)
			require.NoError(t, err, s)
			assert.True(t, fk.Equal(got), "%s -> %v", s, got)
		}
	}
}

func TestFormKey_EqualFold(t *testing.T) {
	a := New(NewModKey("Skyrim", Master), 0x10)
	b := New(NewModKey("SKYRIM", Master), 0x10)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Fold(), b.Fold())
	assert.False(t, a.Equal(New(NewModKey("Skyrim", Plugin), 0x10)))
	assert.False(t, a.Equal(New(skyrim, 0x11)))
}

func TestNew_MasksLocalID(t *testing.T) {
	assert.Equal(t, uint32(0x345678), New(skyrim, 0x12345678).ID)
}

func TestParseFormID(t *testing.T) {
	id, err := ParseFormID("00000001")
	require.NoError(t, err)
	assert.Equal(t, FormID(1), id)

	id, err = ParseFormID("0x0000000F")
	require.NoError(t, err)
	assert.Equal(t, FormID(0xF), id)
	assert.Equal(t, "0x0000000F", id.String())

	for _, bad := range []string{"0x1", "1", "000000001", "0000000G", "", "0x"} {
		_, err := ParseFormID(bad)
		assert.ErrorIs(t, err, ErrInvalidFormID, bad)
	}

	id = FormID(0x02ABCDEF)
	assert.Equal(t, uint8(0x02), id.MasterIndex())
	assert.Equal(t, uint32(0xABCDEF), id.LocalID())
}

func TestParseModKey(t *testing.T) {
	m, err := ParseModKey("Skyrim.esm")
	require.NoError(t, err)
	assert.Equal(t, skyrim, m)
	assert.Equal(t, "Skyrim.esm", m.String())

	m, err = ParseModKey("Update.ESP")
	require.NoError(t, err)
	assert.Equal(t, "Update.esp", m.FileName())

	for _, bad := range []string{"Skyrim.esa", "Skyrim", ".esm", "Sky<rim.esm", "a/b.esp", "x:y.esm"} {
		_, err := ParseModKey(bad)
		assert.ErrorIs(t, err, ErrInvalidModKey, bad)
	}
}

func TestFixFormKey(t *testing.T) {
	assert.Equal(t, "000101:Skyrim.esm", FixFormKey("101:Skyrim.esm"))
	assert.Equal(t, "123456:Skyrim.esm", FixFormKey("123456:Skyrim.esm"))
	assert.Equal(t, "Skyrim.esm", FixFormKey("Skyrim.esm"))
}

func TestParseFormat(t *testing.T) {
	for f := Format(0); f <= SKSEDefault; f++ {
		got, err := ParseFormat(f.String())
		require.NoError(t, err, f.String())
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("bogus")
	assert.Error(t, err)
}

type document struct {
	Key  FormKey `json:"key"`
	Mod  ModKey  `json:"mod"`
	Link FormKey `json:"link"`
}

func TestJSON(t *testing.T) {
	in := document{
		Key: New(skyrim, 0x1A3),
		Mod: NewModKey("Dawnguard", Master),
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"0001A3:Skyrim.esm","mod":"Dawnguard.esm","link":null}`, string(data))

	var out document
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"key":"nope"}`), &out)
	assert.ErrorIs(t, err, ErrInvalidFormKey)
}

func TestFormID_Text(t *testing.T) {
	var id FormID
	require.NoError(t, id.UnmarshalText([]byte("0x00123456")))
	text, err := id.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0x00123456", string(text))
}
