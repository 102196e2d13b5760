package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/five82/locedit/internal/search"
)

const ellipsis = "…"

// truncate shortens value to at most width terminal cells, adding an
// ellipsis when it had to cut. Wide (CJK) runes count as two cells.
func truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(value, width, ellipsis)
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// singleLine flattens line breaks and tabs so a value fits one grid row.
func singleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}

// fitSegments cuts highlight segments so their combined display width is at
// most width, ending with an ellipsis when anything was dropped.
func fitSegments(segments []search.Segment, width int) []search.Segment {
	if width <= 0 {
		return nil
	}
	total := 0
	for _, s := range segments {
		total += runewidth.StringWidth(s.Text)
	}
	if total <= width {
		return segments
	}

	budget := width - runewidth.StringWidth(ellipsis)
	out := make([]search.Segment, 0, len(segments)+1)
	for _, s := range segments {
		if budget <= 0 {
			break
		}
		w := runewidth.StringWidth(s.Text)
		if w <= budget {
			out = append(out, s)
			budget -= w
			continue
		}
		if cut := runewidth.Truncate(s.Text, budget, ""); cut != "" {
			out = append(out, search.Segment{Matched: s.Matched, Text: cut})
		}
		budget = 0
	}
	return append(out, search.Segment{Text: ellipsis})
}

// segmentsWidth returns the display width of the joined segments.
func segmentsWidth(segments []search.Segment) int {
	w := 0
	for _, s := range segments {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}
