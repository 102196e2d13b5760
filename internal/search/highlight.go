package search

import (
	"strings"
	"unicode"
)

// Segment is a run of text that either matched the query or did not.
type Segment struct {
	Matched bool
	Text    string
}

// Highlight splits text into ordered segments so that every case-insensitive
// occurrence of the trimmed query is its own matched segment. The query is a
// literal; no pattern syntax applies. Concatenating the segment texts yields
// text exactly. A blank query or empty text produces a single unmatched
// segment.
func Highlight(text, query string) []Segment {
	needle := lowerRunes(strings.TrimSpace(query))
	if text == "" || len(needle) == 0 {
		return []Segment{{Text: text}}
	}

	// offsets[i] is the byte offset of rune i; the final entry is len(text).
	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		runes = append(runes, unicode.ToLower(r))
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var segments []Segment
	last := 0
	for i := 0; i+len(needle) <= len(runes); {
		if !runesEqual(runes[i:i+len(needle)], needle) {
			i++
			continue
		}
		if i > last {
			segments = append(segments, Segment{Text: text[offsets[last]:offsets[i]]})
		}
		end := i + len(needle)
		segments = append(segments, Segment{Matched: true, Text: text[offsets[i]:offsets[end]]})
		i = end
		last = end
	}
	if len(segments) == 0 {
		return []Segment{{Text: text}}
	}
	if last < len(runes) {
		segments = append(segments, Segment{Text: text[offsets[last]:]})
	}
	return segments
}

// HasMatch reports whether any segment matched.
func HasMatch(segments []Segment) bool {
	for _, s := range segments {
		if s.Matched {
			return true
		}
	}
	return false
}

// Join concatenates segment texts.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func lowerRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
