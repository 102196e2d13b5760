// Package ui is the Bubble Tea front end of the editor.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ header: counts, modified, selected locale, sort, filters │
//	│ input bar: search box, inline editor, or committed query │
//	│ grid: marker │ key │ base │ <locale> │ updated           │
//	│ footer: confirmation, store error, notice, or key hints  │
//	└──────────────────────────────────────────────────────────┘
//
// # Data flow
//
// The model never mutates records. Every change goes through the action
// creators and state.Store.Dispatch; the model then re-reads the snapshot
// and derives its visible rows (search, modified and empty-locale filters,
// sort). Changes made outside Update, by the startup load or a reload,
// arrive through a store subscription that signals a coalescing channel.
//
// # Search
//
// Typed text stays in the search input. Each keystroke bumps a sequence
// number and schedules a tick; only the tick carrying the latest number
// commits the text with SetSearchQuery. Enter commits at once and Esc
// clears. Matches of the committed query are highlighted in every text
// column.
//
// # Files
//
//   - app.go: Model, Options, Update loop, Run
//   - input_handlers.go: search, inline edit, add and delete prompts
//   - viewmodel.go: visible row derivation and cursor handling
//   - grid.go, header.go: rendering
//   - theme.go, style_helpers.go: lipgloss palettes and background-safe rendering
//   - keys.go, help.go: bindings and the help overlay
package ui
