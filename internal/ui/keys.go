package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the editor.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding

	// Locale
	NextLocale key.Binding
	PrevLocale key.Binding

	// Filtering and ordering
	Search         key.Binding
	ToggleModified key.Binding
	ToggleEmpty    key.Binding
	CycleSort      key.Binding

	// Editing
	Edit       key.Binding
	EditBase   key.Binding
	Add        key.Binding
	Delete     key.Binding
	ToggleMark key.Binding
	Copy       key.Binding

	// Session
	Save       key.Binding
	Revert     key.Binding
	Reload     key.Binding
	ClearError key.Binding

	// Input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search / cancel"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),

		NextLocale: key.NewBinding(
			key.WithKeys("l", "tab"),
			key.WithHelp("l/tab", "Next locale"),
		),
		PrevLocale: key.NewBinding(
			key.WithKeys("L", "shift+tab"),
			key.WithHelp("L", "Previous locale"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		ToggleModified: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Modified only"),
		),
		ToggleEmpty: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "Missing in locale"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle sort"),
		),

		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "Edit locale value"),
		),
		EditBase: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Edit base text"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add key"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Delete key"),
		),
		ToggleMark: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Toggle modified mark"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy key"),
		),

		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "S"),
			key.WithHelp("S", "Save changes"),
		),
		Revert: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "Discard changes"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),
		ClearError: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Dismiss error"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Edit, k.NextLocale, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp},
		{k.Search, k.Escape, k.ToggleModified, k.ToggleEmpty, k.CycleSort, k.NextLocale, k.PrevLocale},
		{k.Edit, k.EditBase, k.Add, k.Delete, k.ToggleMark, k.Copy},
		{k.Save, k.Revert, k.Reload, k.ClearError, k.CycleTheme, k.Help, k.Quit},
	}
}

// inputKeyMap returns the bindings shown while a text input is focused.
func inputKeyMap(k keyMap) []key.Binding {
	return []key.Binding{
		k.Confirm,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
	}
}
