package translation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload_PreservesDocumentOrder(t *testing.T) {
	data := []byte(`{
		"zeta": {"base": "Z", "en-us": "Z"},
		"alpha": {"base": "A", "zh-tw": "甲", "count": 3, "nested": {"x": 1}, "gone": null},
		"mid": {"base": "M"}
	}`)

	entries, err := ParsePayload(data)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "zeta", entries[0].Key)
	assert.Equal(t, "alpha", entries[1].Key)
	assert.Equal(t, "mid", entries[2].Key)
	assert.Equal(t, map[string]string{"base": "A", "zh-tw": "甲", "count": "3"}, entries[1].Data)
}

func TestParsePayload_DuplicateKeyKeepsFirstPosition(t *testing.T) {
	entries, err := ParsePayload([]byte(`{"a": {"base": "1"}, "b": {"base": "2"}, "a": {"base": "3"}}`))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)
	assert.Equal(t, "3", entries[0].Data["base"])
}

func TestParsePayload_Errors(t *testing.T) {
	for name, input := range map[string]string{
		"invalid json":   `{not-json`,
		"array root":     `[1,2]`,
		"scalar entry":   `{"a": "text"}`,
		"empty document": ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePayload([]byte(input))
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestFromAPIData(t *testing.T) {
	rec, err := FromAPIData("k", map[string]string{"base": "Hello", "zh-tw": "你好"})
	require.NoError(t, err)
	assert.Equal(t, "Hello", rec.Base)
	assert.NotContains(t, rec.Locales, "base")
	assert.Equal(t, "Hello", rec.Locales[LocaleEnUS])
	assert.Equal(t, "你好", rec.Locales[LocaleZhTW])
	assert.False(t, rec.Modified)

	_, err = FromAPIData(" ", map[string]string{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromAPIData("k", nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToAPIData(t *testing.T) {
	rec := New("k", "Hello", map[string]string{LocaleZhTW: "你好"}, false, 0, 0)
	data, err := ToAPIData(rec)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"base": "Hello", "en-us": "Hello", "zh-tw": "你好"}, data)

	_, err = ToAPIData(Translation{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodePayload_RoundTripsThroughParse(t *testing.T) {
	items := []Translation{
		New("second.key", "Two", map[string]string{LocaleZhTW: "二"}, false, 0, 0),
		New("first", "One", map[string]string{"fr-fr": "Un"}, false, 0, 0),
	}

	out, err := EncodePayload(items)
	require.NoError(t, err)
	assert.True(t, json.Valid(out))

	entries, err := ParsePayload(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second.key", entries[0].Key)
	assert.Equal(t, "first", entries[1].Key)
	assert.Equal(t, map[string]string{"base": "One", "en-us": "One", "zh-tw": "", "fr-fr": "Un"}, entries[1].Data)
}

func TestEncodePayload_RejectsInvalidRecord(t *testing.T) {
	_, err := EncodePayload([]Translation{{Key: ""}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
