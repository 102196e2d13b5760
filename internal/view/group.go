package view

import (
	"maps"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/five82/locedit/internal/translation"
)

// OtherGroup collects keys that do not start with an ASCII letter.
const OtherGroup = "#"

// GroupByFirstChar buckets records by the upper-cased first letter of their
// key. Keys starting with anything other than A-Z go to OtherGroup. Records
// keep their input order within a bucket.
func GroupByFirstChar(items []translation.Translation) map[string][]translation.Translation {
	groups := make(map[string][]translation.Translation)
	for _, t := range items {
		name := groupName(t.Key)
		groups[name] = append(groups[name], t)
	}
	return groups
}

// GroupNames returns the bucket names in display order: letters ascending,
// then OtherGroup.
func GroupNames(groups map[string][]translation.Translation) []string {
	names := slices.Sorted(maps.Keys(groups))
	if i := slices.Index(names, OtherGroup); i >= 0 {
		names = append(slices.Delete(names, i, i+1), OtherGroup)
	}
	return names
}

func groupName(key string) string {
	r, _ := utf8.DecodeRuneInString(key)
	r = unicode.ToUpper(r)
	if r >= 'A' && r <= 'Z' {
		return string(r)
	}
	return OtherGroup
}
