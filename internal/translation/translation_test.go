package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withClock(t *testing.T, values ...int64) {
	t.Helper()
	prev := nowMillis
	i := 0
	nowMillis = func() int64 {
		v := values[min(i, len(values)-1)]
		i++
		return v
	}
	t.Cleanup(func() { nowMillis = prev })
}

func TestNew_DefaultsRequiredLocales(t *testing.T) {
	withClock(t, 1000)

	rec := New("greeting", "Hello", nil, false, 0, 0)
	assert.Equal(t, "Hello", rec.Locales[LocaleEnUS])
	assert.Equal(t, "", rec.Locales[LocaleZhTW])
	assert.Equal(t, int64(1000), rec.Created)
	assert.Equal(t, int64(1000), rec.Updated)
	assert.False(t, rec.Modified)
}

func TestNew_KeepsSuppliedLocales(t *testing.T) {
	rec := New("k", "Base", map[string]string{LocaleEnUS: "US", LocaleZhTW: "台", "ja-jp": "日"}, true, 5, 6)
	assert.Equal(t, "US", rec.Locales[LocaleEnUS])
	assert.Equal(t, "台", rec.Locales[LocaleZhTW])
	assert.Equal(t, "日", rec.Locales["ja-jp"])
	assert.True(t, rec.Modified)
	assert.Equal(t, int64(5), rec.Created)
	assert.Equal(t, int64(6), rec.Updated)
}

func TestNew_ExplicitEmptyEnUSIsKept(t *testing.T) {
	rec := New("k", "Base", map[string]string{LocaleEnUS: ""}, false, 0, 0)
	assert.Equal(t, "", rec.Locales[LocaleEnUS])
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	in := map[string]string{"fr-fr": "Bonjour"}
	rec := New("k", "Hello", in, false, 0, 0)
	in["fr-fr"] = "changed"
	assert.Equal(t, "Bonjour", rec.Locales["fr-fr"])
}

func TestValidate(t *testing.T) {
	good := New("k", "", nil, false, 1, 1)
	tests := []struct {
		name string
		rec  Translation
		want bool
	}{
		{"valid", good, true},
		{"blank key", Translation{Key: "  ", Locales: map[string]string{}}, false},
		{"nil locales", Translation{Key: "k"}, false},
		{"blank locale code", Translation{Key: "k", Locales: map[string]string{" ": "x"}}, false},
		{"negative timestamp", Translation{Key: "k", Locales: map[string]string{}, Created: -1}, false},
		{"empty base allowed", Translation{Key: "k", Locales: map[string]string{}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.rec))
		})
	}
}

func TestUpdateLocale(t *testing.T) {
	withClock(t, 100, 200, 300)
	rec := New("k", "Hello", nil, false, 0, 0)

	updated, err := UpdateLocale(rec, LocaleZhTW, "你好")
	require.NoError(t, err)
	assert.Equal(t, "你好", updated.Locales[LocaleZhTW])
	assert.True(t, updated.Modified)
	assert.Equal(t, int64(200), updated.Updated)
	assert.Equal(t, "", rec.Locales[LocaleZhTW], "input must not change")

	again, err := UpdateLocale(updated, LocaleZhTW, "你好")
	require.NoError(t, err)
	assert.False(t, again.Modified, "resubmitting the same value is not a modification")
}

func TestUpdateLocale_NewLocaleIsModified(t *testing.T) {
	rec := New("k", "Hello", nil, false, 0, 0)
	updated, err := UpdateLocale(rec, "ja-jp", "")
	require.NoError(t, err)
	assert.True(t, updated.Modified)
}

func TestUpdateLocale_InvalidArguments(t *testing.T) {
	_, err := UpdateLocale(Translation{}, LocaleEnUS, "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	rec := New("k", "Hello", nil, false, 0, 0)
	_, err = UpdateLocale(rec, " ", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMarkModified(t *testing.T) {
	rec := New("k", "Hello", nil, false, 0, 0)
	marked, err := MarkModified(rec, true)
	require.NoError(t, err)
	assert.True(t, marked.Modified)

	_, err = MarkModified(Translation{}, true)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSearch(t *testing.T) {
	rec := New("fundfinder-asia", "Asia ex-Japan", map[string]string{LocaleZhTW: "亞洲除日本"}, false, 0, 0)

	assert.True(t, Search(rec, "ASIA"))
	assert.True(t, Search(rec, "ex-japan"))
	assert.True(t, Search(rec, "日本"))
	assert.True(t, Search(rec, "  finder "))
	assert.False(t, Search(rec, "europe"))
	assert.False(t, Search(rec, ""))
	assert.False(t, Search(Translation{}, "asia"))
}

func TestLocalesAndHasLocale(t *testing.T) {
	rec := New("k", "Hello", map[string]string{"fr-fr": "Bonjour", "de-de": " "}, false, 0, 0)
	assert.Equal(t, []string{LocaleEnUS, LocaleZhTW, "de-de", "fr-fr"}, Locales(rec))
	assert.True(t, HasLocale(rec, "fr-fr"))
	assert.False(t, HasLocale(rec, "de-de"))
	assert.False(t, HasLocale(rec, LocaleZhTW))
	assert.False(t, HasLocale(rec, ""))
	assert.Nil(t, Locales(Translation{}))
}

func TestComplete(t *testing.T) {
	incomplete := New("k", "Hello", nil, false, 0, 0)
	assert.False(t, Complete(incomplete))

	complete := New("k", "Hello", map[string]string{LocaleZhTW: "你好"}, false, 0, 0)
	assert.True(t, Complete(complete))
	assert.False(t, CompleteFor(complete, []string{"ja-jp"}))
}

func TestApply(t *testing.T) {
	rec := New("k", "Hello", map[string]string{LocaleZhTW: "你好"}, false, 0, 0)
	base := "Hi"
	modified := true

	out := rec.Apply(Patch{Base: &base, LocaleValues: map[string]string{"fr-fr": "Salut"}, Modified: &modified})
	assert.Equal(t, "Hi", out.Base)
	assert.Equal(t, "你好", out.Locales[LocaleZhTW])
	assert.Equal(t, "Salut", out.Locales["fr-fr"])
	assert.True(t, out.Modified)
	assert.NotContains(t, rec.Locales, "fr-fr")

	replaced := rec.Apply(Patch{Locales: map[string]string{"fr-fr": "Salut"}})
	assert.Equal(t, map[string]string{"fr-fr": "Salut"}, replaced.Locales)
	assert.True(t, Patch{}.IsZero())
}
