package view

import (
	"strings"

	"github.com/five82/locedit/internal/translation"
)

// FilterBySearch keeps records matching query. The query is trimmed; a blank
// query returns items unchanged.
func FilterBySearch(items []translation.Translation, query string) []translation.Translation {
	q := strings.TrimSpace(query)
	if q == "" {
		return items
	}
	return keep(items, func(t translation.Translation) bool { return translation.Search(t, q) })
}

// FilterByModified keeps modified records when onlyModified is set and
// returns items unchanged otherwise.
func FilterByModified(items []translation.Translation, onlyModified bool) []translation.Translation {
	if !onlyModified {
		return items
	}
	return keep(items, func(t translation.Translation) bool { return t.Modified })
}

// FilterByEmptyLocale keeps records whose value for locale is missing or
// blank. A blank locale matches nothing.
func FilterByEmptyLocale(items []translation.Translation, locale string) []translation.Translation {
	if strings.TrimSpace(locale) == "" {
		return []translation.Translation{}
	}
	return keep(items, func(t translation.Translation) bool {
		return strings.TrimSpace(t.Locales[locale]) == ""
	})
}

// FindIncomplete returns records missing a non-blank value for any of
// required. Nil required means translation.RequiredLocales.
func FindIncomplete(items []translation.Translation, required []string) []translation.Translation {
	if required == nil {
		required = translation.RequiredLocales
	}
	return keep(items, func(t translation.Translation) bool { return !translation.CompleteFor(t, required) })
}

func keep(items []translation.Translation, fn func(translation.Translation) bool) []translation.Translation {
	out := make([]translation.Translation, 0, len(items))
	for _, t := range items {
		if fn(t) {
			out = append(out, t)
		}
	}
	return out
}
