package search

import (
	"slices"
	"strings"

	"github.com/five82/locedit/internal/translation"
)

// Field names a part of a record that AdvancedSearch can scan.
type Field string

const (
	FieldKey     Field = "key"
	FieldBase    Field = "base"
	FieldLocales Field = "locales"
)

// AllFields is used when Options.Fields is empty.
var AllFields = []Field{FieldKey, FieldBase, FieldLocales}

// Options tune AdvancedSearch.
type Options struct {
	Fields          []Field
	CaseSensitive   bool
	ExactMatch      bool
	IncludeMetadata bool
}

// Match describes one field of a record that matched. Locale is set for
// FieldLocales matches.
type Match struct {
	Field  Field
	Locale string
	Value  string
}

// Result pairs a record with the fields that matched. Matches is nil unless
// Options.IncludeMetadata is set.
type Result struct {
	Translation translation.Translation
	Matches     []Match
}

// AdvancedSearch filters records by query. A blank query returns every record.
func AdvancedSearch(records []translation.Translation, query string, opts Options) []Result {
	term := strings.TrimSpace(query)
	if term == "" {
		out := make([]Result, len(records))
		for i, rec := range records {
			out[i] = Result{Translation: rec}
		}
		return out
	}
	if !opts.CaseSensitive {
		term = strings.ToLower(term)
	}
	fields := opts.Fields
	if len(fields) == 0 {
		fields = AllFields
	}

	matches := func(value string) bool {
		if !opts.CaseSensitive {
			value = strings.ToLower(value)
		}
		if opts.ExactMatch {
			return value == term
		}
		return strings.Contains(value, term)
	}

	var out []Result
	for _, rec := range records {
		var found []Match
		if slices.Contains(fields, FieldKey) && matches(rec.Key) {
			found = append(found, Match{Field: FieldKey, Value: rec.Key})
		}
		if slices.Contains(fields, FieldBase) && matches(rec.Base) {
			found = append(found, Match{Field: FieldBase, Value: rec.Base})
		}
		if slices.Contains(fields, FieldLocales) {
			for _, code := range translation.Locales(rec) {
				value := rec.Locales[code]
				if value != "" && matches(value) {
					found = append(found, Match{Field: FieldLocales, Locale: code, Value: value})
				}
			}
		}
		if len(found) == 0 {
			continue
		}
		res := Result{Translation: rec}
		if opts.IncludeMetadata {
			res.Matches = found
		}
		out = append(out, res)
	}
	return out
}

// Translations strips results back to their records.
func Translations(results []Result) []translation.Translation {
	out := make([]translation.Translation, len(results))
	for i, r := range results {
		out[i] = r.Translation
	}
	return out
}

// ParseFields converts names such as "key,base" into fields, ignoring blanks.
// Unknown names are returned separately.
func ParseFields(names []string) (fields []Field, unknown []string) {
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		f := Field(name)
		if !slices.Contains(AllFields, f) {
			unknown = append(unknown, name)
			continue
		}
		if !slices.Contains(fields, f) {
			fields = append(fields, f)
		}
	}
	return fields, unknown
}
