package view

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/locedit/internal/translation"
)

// SortByKey returns items ordered by key using collation rules for
// language.English. Records with equal keys keep their relative order.
func SortByKey(items []translation.Translation, ascending bool) []translation.Translation {
	return SortByKeyIn(items, language.English, ascending)
}

// SortByKeyIn is SortByKey with the collation rules of tag.
func SortByKeyIn(items []translation.Translation, tag language.Tag, ascending bool) []translation.Translation {
	c := collate.New(tag)
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b translation.Translation) int {
		n := c.CompareString(a.Key, b.Key)
		if !ascending {
			n = -n
		}
		return n
	})
	return out
}

// SortByUpdated returns items ordered by their updated timestamp, oldest
// first when ascending. The sort is stable.
func SortByUpdated(items []translation.Translation, ascending bool) []translation.Translation {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b translation.Translation) int {
		n := cmp.Compare(a.Updated, b.Updated)
		if !ascending {
			n = -n
		}
		return n
	})
	return out
}
