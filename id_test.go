package recid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recid/formkey"
)

var (
	skyrim  = formkey.NewModKey("Skyrim", formkey.Master)
	ironKey = formkey.New(skyrim, 0x1A3)
)

func TestConstructorsClampLimit(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		want FieldMask
	}{
		{"name", NewName("Iron", false, MaskAll), MaskAllString},
		{"formkey", NewFormKey(ironKey, MaskAll), MaskAllFormKey},
		{"formid", NewFormID(0x0001A3F0, MaskAll), MaskAllFormKey},
		{"modkey", NewModKey(skyrim, MaskAll), MaskAllModKey},
		{"invalid", NewInvalid("??"), MaskAllString},
		{"none", NewName("Iron", false, MaskNone), MaskNone},
		{"editorid only", NewName("Iron", false, FieldEditorID.Mask()|FieldFormKey.Mask()), FieldEditorID.Mask()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.LimitTo())
		})
	}
}

func TestNewNameEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { NewName("", false, MaskAll) })
}

func TestZeroIDIsNull(t *testing.T) {
	var id ID
	assert.Equal(t, KindInvalid, id.Kind())
	assert.True(t, id.IsNull())
	assert.False(t, id.IsValid())
	assert.Equal(t, "", id.String())

	text, ok := id.InvalidText()
	assert.False(t, ok)
	assert.Empty(t, text)

	assert.False(t, NewInvalid("").IsNull())
}

func TestAccessorsPanicOnWrongVariant(t *testing.T) {
	id := Name("Iron")

	assert.Equal(t, "Iron", id.Name())

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*WrongVariantError)
		require.True(t, ok)
		assert.Equal(t, KindFormKey, err.Want)
		assert.Equal(t, KindName, err.Got)
		assert.ErrorIs(t, err, ErrWrongVariant)
	}()
	_ = id.FormKey()
}

func TestCheckedAccessors(t *testing.T) {
	id := OfFormKey(ironKey)

	fk, ok := id.AsFormKey()
	assert.True(t, ok)
	assert.Equal(t, ironKey, fk)

	_, ok = id.AsName()
	assert.False(t, ok)
	_, ok = id.AsModKey()
	assert.False(t, ok)
	_, ok = id.AsFormID()
	assert.False(t, ok)

	mk, ok := OfModKey(skyrim).AsModKey()
	assert.True(t, ok)
	assert.Equal(t, skyrim, mk)

	fid, ok := OfFormID(0x0001A3F0).AsFormID()
	assert.True(t, ok)
	assert.Equal(t, formkey.FormID(0x0001A3F0), fid)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ID
		want bool
	}{
		{"names ignore case", Name("IronSword"), Name("ironsword"), true},
		{"wildcard differs", Name("Iron"), Wildcard("Iron"), false},
		{"limit differs", Name("Iron"), NewName("Iron", false, FieldName.Mask()), false},
		{"kind differs", Name("Skyrim"), OfModKey(skyrim), false},
		{"formkeys ignore plugin case", OfFormKey(ironKey), OfFormKey(formkey.MustParse("0001A3:SKYRIM.ESM")), true},
		{"formkey ids differ", OfFormKey(ironKey), OfFormKey(formkey.New(skyrim, 0x1A4)), false},
		{"modkeys", OfModKey(skyrim), OfModKey(formkey.NewModKey("skyrim", formkey.Master)), true},
		{"modkey types differ", OfModKey(skyrim), OfModKey(formkey.NewModKey("Skyrim", formkey.Plugin)), false},
		{"formids", OfFormID(1), OfFormID(1), true},
		{"null vs empty invalid", ID{}, NewInvalid(""), false},
		{"invalid text", NewInvalid("a?"), NewInvalid("A?"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
			if tt.want {
				assert.Equal(t, tt.a.Hash(), tt.b.Hash())
			}
		})
	}
}

func TestWithWildcardAndLimit(t *testing.T) {
	id := Name("Iron").WithWildcard(true)
	assert.True(t, id.IsWildcard())
	assert.True(t, id.Equal(Wildcard("Iron")))

	fk := OfFormKey(ironKey).WithWildcard(true)
	assert.False(t, fk.IsWildcard())

	limited := OfModKey(skyrim).WithLimit(MaskAll)
	assert.Equal(t, MaskAllModKey, limited.LimitTo())
}

func TestMatchesString(t *testing.T) {
	assert.True(t, Name("IronSword").MatchesString("IRONSWORD"))
	assert.False(t, Name("Iron").MatchesString("IronSword"))
	assert.True(t, Wildcard("sword").MatchesString("IronSwordOfDoom"))
	assert.False(t, Wildcard("sword").MatchesString(""))
	assert.False(t, OfFormKey(ironKey).MatchesString("Iron"))
}

func TestMatchesKeys(t *testing.T) {
	other := formkey.New(formkey.NewModKey("Dawnguard", formkey.Master), 0x1A3)

	assert.True(t, OfFormKey(ironKey).MatchesFormKey(ironKey))
	assert.False(t, OfFormKey(ironKey).MatchesFormKey(other))
	assert.True(t, OfModKey(skyrim).MatchesFormKey(ironKey))
	assert.False(t, OfModKey(skyrim).MatchesFormKey(other))
	assert.True(t, OfModKey(skyrim).MatchesModKey(skyrim))
	assert.False(t, OfFormKey(ironKey).MatchesModKey(skyrim))
}

func TestEqualScopedByField(t *testing.T) {
	id := NewName("Iron", false, FieldName.Mask())
	assert.True(t, id.EqualString("iron", FieldName))
	assert.False(t, id.EqualString("iron", FieldEditorID))

	mk := OfModKey(skyrim)
	assert.True(t, mk.EqualModKey(skyrim, FieldModKey))
	assert.True(t, mk.EqualFormKey(ironKey, FieldKeywords))
	assert.False(t, mk.EqualFormKey(ironKey, FieldFormKey))

	fk := OfFormKey(ironKey)
	assert.True(t, fk.EqualFormKey(ironKey, FieldFormKey))
	assert.False(t, fk.EqualFormKey(ironKey, FieldNone))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0001A3:Skyrim.esm", OfFormKey(ironKey).String())
	assert.Equal(t, "0x1A3~Skyrim.esm", OfFormKey(ironKey).Format(formkey.SKSEDefault))
	assert.Equal(t, "Skyrim.esm", OfModKey(skyrim).String())
	assert.Equal(t, "0x0001A3F0", OfFormID(0x0001A3F0).String())
	assert.Equal(t, "*Iron", Wildcard("Iron").String())
	assert.Equal(t, "Iron", Name("Iron").String())
	assert.Equal(t, "a?b", NewInvalid("a?b").String())
	assert.Equal(t, "FormKey: 0001A3:Skyrim.esm", OfFormKey(ironKey).GoString())
	assert.Equal(t, "Invalid: null", ID{}.GoString())
}

func TestFormatClassifyRoundTrip(t *testing.T) {
	formats := []formkey.Format{
		formkey.Default,
		formkey.HexPrefix,
		formkey.RemoveLeadingZeros,
		formkey.SeparatorTilde,
		formkey.HexPrefix | formkey.RemoveLeadingZeros,
		formkey.SKSEDefault,
	}
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			for _, id := range []ID{OfFormKey(ironKey), OfModKey(skyrim), Name("IronSword")} {
				assert.True(t, id.Equal(Classify(id.Format(f))), id.Format(f))
			}
		})
	}
}
