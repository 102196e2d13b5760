package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/locedit/internal/search"
	"github.com/five82/locedit/internal/translation"
)

// gridLayout holds column widths in terminal cells.
type gridLayout struct {
	key         int
	base        int
	value       int
	updated     int
	showBase    bool
	showUpdated bool
}

// computeLayout splits width across the grid columns. Narrow terminals drop
// the base column; wide ones gain an updated column.
func computeLayout(width int) gridLayout {
	l := gridLayout{
		showBase:    width >= LayoutCompactWidth,
		showUpdated: width >= LayoutWideWidth,
	}
	avail := width - markerWidth - 1
	if l.showUpdated {
		l.updated = updatedColumnWidth
		avail -= updatedColumnWidth + 1
	}
	l.key = max(keyColumnMin, min(avail*3/10, keyColumnMax))
	avail -= l.key + 1
	if l.showBase {
		l.base = max((avail-1)/2, 0)
		l.value = max(avail-1-l.base, 0)
	} else {
		l.value = max(avail, 0)
	}
	return l
}

// renderGrid renders the column header and the visible rows, padded to the
// grid height.
func (m Model) renderGrid() string {
	layout := computeLayout(m.width)
	height := m.gridHeight()
	lines := make([]string, 0, height+1)
	lines = append(lines, m.renderColumnHeader(layout))

	if len(m.rows) == 0 {
		lines = append(lines, m.renderEmptyGrid())
	} else {
		end := min(m.offset+height, len(m.rows))
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderRow(m.rows[i], i, layout))
		}
	}

	blank := NewBgStyle(m.theme.Background).FillLine("", m.width)
	for len(lines) < height+1 {
		lines = append(lines, blank)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderColumnHeader(layout gridLayout) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	cell := func(title string, width int) string {
		return bg.Render(padRight(truncate(title, width), width), styles.ColumnHeader)
	}
	cols := []string{bg.Spaces(markerWidth), cell("KEY", layout.key)}
	if layout.showBase {
		cols = append(cols, cell("BASE", layout.base))
	}
	locale := m.snapshot.SelectedLocale
	if locale == "" {
		locale = "locale"
	}
	cols = append(cols, cell(strings.ToUpper(locale), layout.value))
	if layout.showUpdated {
		cols = append(cols, cell("UPDATED", layout.updated))
	}
	return bg.FillLine(strings.Join(cols, bg.Space()), m.width)
}

func (m Model) renderEmptyGrid() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	text := "No translations"
	switch {
	case m.snapshot.Loading:
		text = "Loading translations..."
	case m.searchStats.HasQuery:
		text = "No translations match \"" + strings.TrimSpace(m.snapshot.SearchQuery) + "\""
	case m.onlyModified || m.onlyEmpty:
		text = "No translations match the active filters"
	}
	return bg.FillLine(bg.Spaces(markerWidth)+bg.Render(text, styles.MutedText), m.width)
}

// renderRow renders one record. Matches of the committed query are
// highlighted in every text column.
func (m Model) renderRow(rec translation.Translation, index int, layout gridLayout) string {
	bgColor := m.theme.Background
	if index%2 == 1 {
		bgColor = m.theme.SurfaceAlt
	}
	selected := index == m.selected
	if selected {
		bgColor = m.theme.SelectionBg
	}
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	text := styles.Text
	if selected {
		text = styles.Selected.Bold(true)
	}

	cols := []string{
		m.renderMarker(rec, styles, bg),
		m.renderCell(rec.Key, layout.key, text, styles, bg, ""),
	}
	if layout.showBase {
		cols = append(cols, m.renderCell(rec.Base, layout.base, text, styles, bg, "(no base)"))
	}
	value, ok := rec.Locales[m.snapshot.SelectedLocale]
	placeholder := "(empty)"
	if !ok {
		placeholder = "(missing)"
	}
	cols = append(cols, m.renderCell(value, layout.value, text, styles, bg, placeholder))
	if layout.showUpdated {
		cols = append(cols, bg.Render(padRight(formatUpdated(rec.Updated), layout.updated), styles.MutedText))
	}
	return bg.FillLine(strings.Join(cols, bg.Space()), m.width)
}

// renderMarker shows a dot for modified records and a bang for records
// missing a required locale.
func (m Model) renderMarker(rec translation.Translation, styles Styles, bg BgStyle) string {
	var b strings.Builder
	b.WriteString(bg.Space())
	if rec.Modified {
		b.WriteString(bg.Render("●", styles.WarningText))
	} else {
		b.WriteString(bg.Space())
	}
	if !translation.CompleteFor(rec, m.required) {
		b.WriteString(bg.Render("!", styles.DangerText))
	} else {
		b.WriteString(bg.Space())
	}
	return b.String()
}

// renderCell fits text into width cells and highlights query matches.
func (m Model) renderCell(text string, width int, style lipgloss.Style, styles Styles, bg BgStyle, placeholder string) string {
	if width <= 0 {
		return ""
	}
	if text == "" && placeholder != "" {
		return bg.Render(padRight(truncate(placeholder, width), width), styles.FaintText)
	}
	segments := fitSegments(search.Highlight(singleLine(text), m.snapshot.SearchQuery), width)
	var b strings.Builder
	for _, s := range segments {
		if s.Matched {
			b.WriteString(styles.Match.Render(s.Text))
			continue
		}
		b.WriteString(bg.Render(s.Text, style))
	}
	b.WriteString(bg.Spaces(width - segmentsWidth(segments)))
	return b.String()
}

func formatUpdated(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}
