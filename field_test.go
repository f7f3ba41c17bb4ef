package recid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMaskHas(t *testing.T) {
	assert.True(t, MaskAll.Has(FieldKeywords))
	assert.False(t, MaskBasic.Has(FieldName))
	assert.False(t, MaskAll.Has(FieldNone))
	assert.Equal(t, []Field{FieldEditorID, FieldName, FieldKeywords}, MaskAllString.Fields())
}

func TestFieldMaskString(t *testing.T) {
	assert.Equal(t, "none", MaskNone.String())
	assert.Equal(t, "all", MaskAll.String())
	assert.Equal(t, "formkey,editorid,modkey", MaskBasic.String())
	assert.Equal(t, "field(32)", Field(32).String())
}

func TestParseFieldMask(t *testing.T) {
	tests := []struct {
		in   string
		want FieldMask
	}{
		{"", MaskNone},
		{"none", MaskNone},
		{"all", MaskAll},
		{"default", MaskDefault},
		{"basic", MaskBasic},
		{"EditorID,Name", FieldEditorID.Mask() | FieldName.Mask()},
		{"formkey | keywords", MaskAllFormKey},
		{"allmodkey", MaskAllModKey},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseFieldMask(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}

	_, err := ParseFieldMask("editorid,color")
	assert.Error(t, err)
}

func TestKindIndexable(t *testing.T) {
	assert.True(t, KindName.Indexable())
	assert.True(t, KindFormKey.Indexable())
	assert.True(t, KindModKey.Indexable())
	assert.False(t, KindFormID.Indexable())
	assert.False(t, KindInvalid.Indexable())
	assert.Equal(t, "Unknown", Kind(99).String())
}
