package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/locedit/internal/view"
)

// renderMain renders the full screen: header, input bar, grid and footer.
func (m Model) renderMain() string {
	return strings.Join([]string{
		m.renderHeader(),
		m.renderInputBar(),
		m.renderGrid(),
		m.renderFooter(),
	}, "\n")
}

// renderHeader shows counts, the selected locale and active view options.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("locedit", styles.Logo)}
	if m.source != "" {
		parts = append(parts, bg.Render("["+m.source+"]", styles.FaintText))
	}

	if m.searchStats.HasQuery {
		parts = append(parts, bg.Render(fmt.Sprintf("Showing %d of %d (%d%%)",
			m.searchStats.Filtered, m.searchStats.Total, m.searchStats.Percentage), styles.InfoText))
	} else {
		parts = append(parts, bg.Render(fmt.Sprintf("%d keys", m.searchStats.Total), styles.Text))
	}
	if len(m.rows) != m.searchStats.Filtered {
		parts = append(parts, bg.Render(fmt.Sprintf("%d shown", len(m.rows)), styles.MutedText))
	}

	if n := m.snapshot.ModifiedCount(); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d modified", n), styles.WarningText))
	}
	if m.stats.Incomplete > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("%d incomplete", m.stats.Incomplete), styles.DangerText))
	}

	locale := m.snapshot.SelectedLocale
	localePart := bg.Render(localeLabel(locale), styles.AccentText)
	if ls := m.localeCompletion(); ls.Total > 0 {
		localePart += bg.Space() + bg.Render(fmt.Sprintf("%d%%", ls.Percentage), styles.MutedText)
	}
	parts = append(parts, localePart)

	parts = append(parts, bg.Render("sort "+m.sortMode.label(), styles.MutedText))
	if m.onlyModified {
		parts = append(parts, bg.Render("modified only", styles.WarningText))
	}
	if m.onlyEmpty {
		parts = append(parts, bg.Render("missing "+locale, styles.WarningText))
	}
	if m.snapshot.Loading {
		parts = append(parts, bg.Render("Loading...", styles.WarningText.Bold(true)))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, "  "))
}

// localeCompletion counts filled values for the selected locale.
func (m Model) localeCompletion() view.LocaleStats {
	locale := m.snapshot.SelectedLocale
	if ls, ok := m.stats.ByLocale[locale]; ok {
		return ls
	}
	if locale == "" {
		return view.LocaleStats{}
	}
	return view.ComputeStats(m.snapshot.Translations, []string{locale}).ByLocale[locale]
}

// renderInputBar shows the focused input or the committed query.
func (m Model) renderInputBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)
	bar := lipgloss.NewStyle().Width(m.width).MaxHeight(1).Padding(0, 1)

	switch m.mode {
	case modeSearch:
		return bar.Background(lipgloss.Color(m.theme.FocusBg)).Render(m.searchInput.View())
	case modeEdit, modeAdd:
		label := ""
		if m.mode == modeEdit {
			label = truncate(m.editKey, max(m.width/3, 8)) + "  "
		}
		return bar.Background(lipgloss.Color(m.theme.FocusBg)).Render(
			lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent)).Render(label) + m.editInput.View())
	}

	if q := m.snapshot.SearchQuery; strings.TrimSpace(q) != "" {
		return bg.FillLine(bg.Space()+bg.Render("/ "+singleLine(q), styles.AccentText)+
			bg.Spaces(2)+bg.Render("esc to clear", styles.FaintText), m.width)
	}
	return bg.FillLine(bg.Space()+bg.Render("Press / to search", styles.FaintText), m.width)
}

// renderFooter shows, in priority order, a pending confirmation, the store
// error, a transient notice, or the key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var content string
	switch {
	case m.mode == modeConfirmDelete:
		content = bg.Render("Delete "+m.pendingKey+"?", styles.WarningText.Bold(true)) +
			bg.Spaces(2) + bg.Render("y to confirm, any other key to cancel", styles.MutedText)
	case m.snapshot.HasError():
		content = bg.Render("Error: "+singleLine(m.snapshot.Error), styles.DangerText) +
			bg.Spaces(2) + bg.Render("c to dismiss", styles.MutedText)
	case m.notice != "":
		style := styles.SuccessText
		if m.noticeError {
			style = styles.WarningText
		}
		content = bg.Render(m.notice, style)
	case m.mode == modeSearch || m.mode == modeEdit || m.mode == modeAdd:
		content = m.help.ShortHelpView(inputKeyMap(m.keys))
	default:
		content = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
}
