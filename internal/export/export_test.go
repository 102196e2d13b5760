package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/locedit/internal/translation"
)

func fixture() []translation.Translation {
	return []translation.Translation{
		translation.New("zeta.title", "Zeta", map[string]string{"zh-tw": "澤塔", "ja-jp": "ゼータ"}, false, 1, 1),
		translation.New("count", "123", map[string]string{"zh-tw": "true"}, false, 1, 1),
		translation.New("alpha", "Alpha: \"quoted\"", nil, false, 1, 1),
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, translation.ErrInvalidArgument)

	assert.Equal(t, FormatYAML, FormatFromPath("out/strings.yaml"))
	assert.Equal(t, FormatJSON, FormatFromPath("strings.txt"))
}

func TestEncodeYAML_OrderAndQuoting(t *testing.T) {
	out, err := Encode(fixture(), FormatYAML)
	require.NoError(t, err)
	text := string(out)

	zeta := strings.Index(text, "zeta.title:")
	count := strings.Index(text, "count:")
	alpha := strings.Index(text, "alpha:")
	require.True(t, zeta >= 0 && count > zeta && alpha > count, "keys out of order:\n%s", text)

	// base, then required locales, then the rest
	entry := text[zeta:count]
	assert.Less(t, strings.Index(entry, "base:"), strings.Index(entry, "en-us:"))
	assert.Less(t, strings.Index(entry, "en-us:"), strings.Index(entry, "zh-tw:"))
	assert.Less(t, strings.Index(entry, "zh-tw:"), strings.Index(entry, "ja-jp:"))

	assert.Contains(t, text, `base: "123"`)
	assert.Contains(t, text, `zh-tw: "true"`)
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			items := fixture()
			out, err := Encode(items, f)
			require.NoError(t, err)

			entries, err := Decode(out, f)
			require.NoError(t, err)
			require.Len(t, entries, len(items))
			for i, e := range entries {
				assert.Equal(t, items[i].Key, e.Key)
				want, err := translation.ToAPIData(items[i])
				require.NoError(t, err)
				assert.Equal(t, want, e.Data)
			}
		})
	}
}

func TestDecodeYAML_Errors(t *testing.T) {
	_, err := Decode([]byte("- a\n- b\n"), FormatYAML)
	assert.ErrorIs(t, err, translation.ErrInvalidArgument)

	_, err = Decode([]byte("key: value\n"), FormatYAML)
	assert.ErrorIs(t, err, translation.ErrInvalidArgument)

	_, err = Decode([]byte("key: [unclosed\n"), FormatYAML)
	assert.ErrorIs(t, err, translation.ErrInvalidArgument)

	entries, err := Decode([]byte(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeYAML_SkipsNullAndNested(t *testing.T) {
	entries, err := Decode([]byte("k:\n  base: B\n  zh-tw: ~\n  nested:\n    a: b\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]string{"base": "B"}, entries[0].Data)
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode([]translation.Translation{{Key: ""}}, FormatYAML)
	assert.ErrorIs(t, err, translation.ErrInvalidArgument)

	_, err = Encode(nil, Format("xml"))
	assert.ErrorIs(t, err, translation.ErrInvalidArgument)
}
