package ui

import (
	"github.com/five82/locedit/internal/search"
	"github.com/five82/locedit/internal/translation"
	"github.com/five82/locedit/internal/view"
)

// SortMode orders the visible rows.
type SortMode int

const (
	SortLoadOrder SortMode = iota
	SortKey
	SortUpdated
)

var sortNames = []string{"load", "key", "updated"}

// String returns the name stored in preferences.
func (s SortMode) String() string {
	if s < 0 || int(s) >= len(sortNames) {
		return sortNames[0]
	}
	return sortNames[s]
}

// label returns the header label.
func (s SortMode) label() string {
	switch s {
	case SortKey:
		return "A-Z"
	case SortUpdated:
		return "Recent"
	default:
		return "Loaded"
	}
}

func (s SortMode) next() SortMode {
	return SortMode((int(s) + 1) % len(sortNames))
}

// ParseSortMode maps a preference value to a SortMode, defaulting to load order.
func ParseSortMode(name string) SortMode {
	for i, n := range sortNames {
		if n == name {
			return SortMode(i)
		}
	}
	return SortLoadOrder
}

// refreshRows recomputes the visible rows from the snapshot and the local
// filters, keeping the selection on the same key when it is still visible.
func (m *Model) refreshRows() {
	all := m.snapshot.Translations
	query := m.snapshot.SearchQuery

	var results []search.Result
	if m.engine != nil {
		results = m.engine.Search(all, query, search.Options{})
	} else {
		results = search.AdvancedSearch(all, query, search.Options{})
	}
	rows := search.Translations(results)
	m.searchStats = search.ComputeStats(all, rows, query)

	rows = view.FilterByModified(rows, m.onlyModified)
	if m.onlyEmpty {
		rows = view.FilterByEmptyLocale(rows, m.snapshot.SelectedLocale)
	}
	switch m.sortMode {
	case SortKey:
		rows = view.SortByKeyIn(rows, collationTag(m.snapshot.SelectedLocale), true)
	case SortUpdated:
		rows = view.SortByUpdated(rows, false)
	}
	m.rows = rows
	m.stats = view.ComputeStats(all, m.required)

	m.selected = 0
	for i, row := range rows {
		if row.Key == m.selectedKey {
			m.selected = i
			break
		}
	}
	m.clampSelection()
}

// clampSelection keeps the cursor and scroll offset inside the rows.
func (m *Model) clampSelection() {
	if len(m.rows) == 0 {
		m.selected = 0
		m.offset = 0
		m.selectedKey = ""
		return
	}
	m.selected = max(0, min(m.selected, len(m.rows)-1))
	m.selectedKey = m.rows[m.selected].Key

	height := m.gridHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if height > 0 && m.selected >= m.offset+height {
		m.offset = m.selected - height + 1
	}
	m.offset = max(0, min(m.offset, max(len(m.rows)-height, 0)))
}

// moveSelection moves the cursor by delta rows.
func (m *Model) moveSelection(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.selected += delta
	m.clampSelection()
}

// selectKey moves the cursor to key when it is visible.
func (m *Model) selectKey(key string) {
	for i, row := range m.rows {
		if row.Key == key {
			m.selected = i
			m.clampSelection()
			return
		}
	}
}

// current returns the record under the cursor.
func (m Model) current() (translation.Translation, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return translation.Translation{}, false
	}
	return m.rows[m.selected], true
}

// gridHeight is the number of data rows that fit on screen.
func (m Model) gridHeight() int {
	return max(m.height-chromeLines, 0)
}
