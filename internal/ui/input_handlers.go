package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/locedit/internal/actions"
	"github.com/five82/locedit/internal/translation"
)

// startSearch focuses the search box. Typed text stays local until the
// debounce fires or the user confirms.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.mode = modeSearch
	m.searchInput.SetValue(m.snapshot.SearchQuery)
	m.searchInput.CursorEnd()
	return m, m.searchInput.Focus()
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchSeq++
		m.searchInput.Blur()
		m.mode = modeBrowse
		m.commitSearch()
		return m, nil

	case "esc":
		m.searchSeq++
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.mode = modeBrowse
		m.commitSearch()
		return m, nil

	case "up", "down":
		// Let the cursor move while typing.
		return m.handleGridKey(msg)
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}
	m.searchSeq++
	return m, tea.Batch(cmd, debounceCmd(m.debounce, m.searchSeq))
}

// commitSearch dispatches the local search text when it differs from the
// committed query. The raw text is stored; filtering trims it.
func (m *Model) commitSearch() {
	query := m.searchInput.Value()
	if query == m.snapshot.SearchQuery {
		return
	}
	m.dispatch(actions.SetSearchQuery(query))
}

// startEdit opens the inline editor on the selected record.
func (m Model) startEdit(target editTarget) (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		return m, nil
	}
	if target == editLocale && strings.TrimSpace(m.snapshot.SelectedLocale) == "" {
		return m, m.setNotice("Select a locale first", true)
	}
	m.mode = modeEdit
	m.editTarget = target
	m.editKey = rec.Key
	if target == editBase {
		m.editInput.Prompt = "base ▸ "
		m.editInput.Placeholder = "Base text"
		m.editInput.SetValue(rec.Base)
	} else {
		m.editInput.Prompt = m.snapshot.SelectedLocale + " ▸ "
		m.editInput.Placeholder = "Translation for " + localeName(m.snapshot.SelectedLocale)
		m.editInput.SetValue(rec.Locales[m.snapshot.SelectedLocale])
	}
	m.editInput.CursorEnd()
	return m, m.editInput.Focus()
}

// startAdd opens the editor for a new key.
func (m Model) startAdd() (tea.Model, tea.Cmd) {
	m.mode = modeAdd
	m.editKey = ""
	m.editInput.Prompt = "new key ▸ "
	m.editInput.Placeholder = "section.name"
	m.editInput.SetValue("")
	return m, m.editInput.Focus()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		mode := m.mode
		value := m.editInput.Value()
		m.closeEditor()
		if mode == modeAdd {
			return m.commitAdd(value)
		}
		m.commitEdit(value)
		return m, nil

	case "esc":
		m.closeEditor()
		return m, nil
	}

	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return m, cmd
}

func (m *Model) closeEditor() {
	m.editInput.Blur()
	m.mode = modeBrowse
}

// commitEdit dispatches the edited value. An unchanged value dispatches
// nothing so the record is not flagged as modified.
func (m *Model) commitEdit(value string) {
	rec, idx := m.snapshot.Find(m.editKey)
	if idx < 0 {
		return
	}
	switch m.editTarget {
	case editBase:
		if value == rec.Base {
			return
		}
		modified := true
		a, err := actions.Update(rec.Key, translation.Patch{Base: &value, Modified: &modified})
		if err != nil {
			m.reportError(err)
			return
		}
		m.dispatch(a)

	default:
		locale := m.snapshot.SelectedLocale
		if current, ok := rec.Locales[locale]; ok && current == value {
			return
		}
		a, err := actions.UpdateTranslationLocale(rec.Key, locale, value)
		if err != nil {
			m.reportError(err)
			return
		}
		m.dispatch(a)
	}
	m.selectKey(rec.Key)
}

// commitAdd creates the record and moves straight to editing its base text.
func (m Model) commitAdd(key string) (tea.Model, tea.Cmd) {
	key = strings.TrimSpace(key)
	a, err := actions.CreateAndAdd(key, "", nil)
	if err != nil {
		m.reportError(err)
		return m, nil
	}
	m.dispatch(a)
	if m.snapshot.HasError() {
		return m, nil
	}
	if m.onlyEmpty || m.onlyModified {
		m.onlyEmpty = false
		m.onlyModified = false
		m.refreshRows()
	}
	if strings.TrimSpace(m.snapshot.SearchQuery) != "" {
		m.searchInput.SetValue("")
		m.dispatch(actions.SetSearchQuery(""))
	}
	m.selectKey(key)
	return m.startEdit(editBase)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := m.pendingKey
	m.pendingKey = ""
	m.mode = modeBrowse
	switch msg.String() {
	case "y", "Y":
		a, err := actions.Delete(key)
		if err != nil {
			m.reportError(err)
			return m, nil
		}
		m.dispatch(a)
		return m, m.setNotice("Deleted "+key, false)
	}
	return m, nil
}

// updateInput forwards non-key messages, such as cursor blinks, to the
// focused input.
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case modeEdit, modeAdd:
		m.editInput, cmd = m.editInput.Update(msg)
	}
	return m, cmd
}
