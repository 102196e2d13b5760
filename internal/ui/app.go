package ui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/locedit/internal/actions"
	"github.com/five82/locedit/internal/prefs"
	"github.com/five82/locedit/internal/search"
	"github.com/five82/locedit/internal/state"
	"github.com/five82/locedit/internal/translation"
	"github.com/five82/locedit/internal/view"
)

// inputMode is what the keyboard currently drives.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeSearch
	modeEdit
	modeAdd
	modeConfirmDelete
)

// editTarget is the field an edit commits to.
type editTarget int

const (
	editLocale editTarget = iota
	editBase
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Store   *state.Store
	Engine  *search.Engine
	Logger  *zap.Logger

	// Locales is the selectable locale list; Required drives the
	// incomplete marker.
	Locales  []string
	Required []string
	Debounce time.Duration

	// Bootstrap runs once from Init. Reload runs on request when CanReload.
	Bootstrap func(context.Context) (string, error)
	Reload    func(context.Context) error
	CanReload bool

	// Copy writes to the system clipboard; nil disables copying.
	Copy func(string) error

	Prefs     prefs.Prefs
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	engine    *search.Engine
	logger    *zap.Logger
	prefsPath string
	locales   []string
	required  []string
	debounce  time.Duration
	bootstrap func(context.Context) (string, error)
	reload    func(context.Context) error
	canReload bool
	copy      func(string) error
	changes   <-chan struct{}

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	mode     inputMode

	// Data state
	snapshot    state.Snapshot
	source      string
	backup      view.Backup
	hasBackup   bool
	rows        []translation.Translation
	searchStats search.Stats
	stats       view.Stats

	// Grid state
	selected    int
	selectedKey string
	offset      int

	// Filters
	onlyModified bool
	onlyEmpty    bool
	sortMode     SortMode

	// Inputs
	searchInput textinput.Model
	searchSeq   int
	editInput   textinput.Model
	editTarget  editTarget
	editKey     string
	pendingKey  string

	// Footer notice
	notice      string
	noticeError bool
	noticeSeq   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	locales := opts.Locales
	if len(locales) == 0 {
		locales = translation.RequiredLocales
	}
	required := opts.Required
	if len(required) == 0 {
		required = translation.RequiredLocales
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	themeName := opts.Prefs.Theme
	if themeName == "" {
		themeName = "Dracula"
	}
	theme := GetTheme(themeName)

	si := textinput.New()
	si.Prompt = "/ "
	si.Placeholder = "Search keys, base text and translations..."
	si.CharLimit = 200

	ei := textinput.New()
	ei.CharLimit = 2000

	m := Model{
		ctx:          ctx,
		store:        opts.Store,
		engine:       opts.Engine,
		logger:       logger,
		prefsPath:    prefsPath,
		locales:      slices.Clone(locales),
		required:     slices.Clone(required),
		debounce:     debounce,
		bootstrap:    opts.Bootstrap,
		reload:       opts.Reload,
		canReload:    opts.CanReload && opts.Reload != nil,
		copy:         opts.Copy,
		theme:        theme,
		keys:         DefaultKeyMap(),
		help:         newHelp(theme),
		sortMode:     ParseSortMode(opts.Prefs.Sort),
		onlyModified: opts.Prefs.Filter.OnlyModified,
		onlyEmpty:    opts.Prefs.Filter.OnlyEmpty,
		searchInput:  si,
		editInput:    ei,
		snapshot:     state.InitialSnapshot(),
	}

	if m.store != nil {
		if locale := opts.Prefs.Locale; locale != "" && slices.Contains(m.locales, locale) {
			if a, err := actions.SetSelectedLocale(locale); err == nil {
				m.store.Dispatch(a)
			}
		}
		m.snapshot = m.store.Snapshot()
	}
	m.searchInput.SetValue(m.snapshot.SearchQuery)
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := bootstrapCmd(m.ctx, m.bootstrap); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if cmd := waitForChange(m.changes, m.store); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.searchInput.Width = max(msg.Width-6, 10)
		m.editInput.Width = max(msg.Width*2/3-12, 10)
		m.ready = true
		m.clampSelection()
		return m, nil

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, waitForChange(m.changes, m.store)

	case loadedMsg:
		m.source = msg.source
		m.syncFromStore()
		if msg.err != nil {
			m.logger.Warn("initial load failed", zap.Error(msg.err))
			return m, nil
		}
		m.takeBackup()
		return m, m.setNotice(fmt.Sprintf("Loaded %d keys from %s", len(m.snapshot.Translations), msg.source), false)

	case reloadedMsg:
		m.syncFromStore()
		if msg.err != nil {
			m.logger.Warn("reload failed", zap.Error(msg.err))
			return m, nil
		}
		m.source = "remote"
		m.takeBackup()
		return m, m.setNotice(fmt.Sprintf("Reloaded %d keys", len(m.snapshot.Translations)), false)

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.commitSearch()
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeError = false
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard write failed", zap.Error(msg.err))
			return m, m.setNotice("Copy failed: "+msg.err.Error(), true)
		}
		return m, m.setNotice("Copied "+msg.key, false)
	}

	if m.mode != modeBrowse {
		return m.updateInput(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeEdit, modeAdd:
		return m.handleEditKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.help = newHelp(m.theme)
		m.help.Width = m.width
		m.savePrefs()
		return m, nil

	case "/":
		return m.startSearch()

	case "esc":
		if m.snapshot.SearchQuery != "" || m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.searchSeq++
			m.commitSearch()
		}
		return m, nil

	case "l", "tab":
		return m.cycleLocale(1)

	case "L", "shift+tab":
		return m.cycleLocale(-1)

	case "m":
		m.onlyModified = !m.onlyModified
		m.refreshRows()
		m.savePrefs()
		return m, nil

	case "E":
		m.onlyEmpty = !m.onlyEmpty
		m.refreshRows()
		m.savePrefs()
		return m, nil

	case "s":
		m.sortMode = m.sortMode.next()
		m.refreshRows()
		m.savePrefs()
		return m, nil

	case "enter", "e":
		return m.startEdit(editLocale)

	case "b":
		return m.startEdit(editBase)

	case "a":
		return m.startAdd()

	case "D":
		if rec, ok := m.current(); ok {
			m.pendingKey = rec.Key
			m.mode = modeConfirmDelete
		}
		return m, nil

	case "x":
		return m.toggleMark()

	case "y":
		return m.copyKey()

	case "S", "ctrl+s":
		return m.save()

	case "U":
		return m.revert()

	case "r":
		return m.startReload()

	case "c":
		if m.snapshot.HasError() {
			m.dispatch(actions.ClearError())
		}
		return m, nil
	}

	return m.handleGridKey(msg)
}

// handleGridKey processes cursor movement.
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := max(m.gridHeight(), 1)
	switch msg.String() {
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "g", "home":
		m.selected = 0
		m.clampSelection()
	case "G", "end":
		m.selected = len(m.rows) - 1
		m.clampSelection()
	case "pgdown":
		m.moveSelection(page)
	case "pgup":
		m.moveSelection(-page)
	case "ctrl+d":
		m.moveSelection(max(page/2, 1))
	case "ctrl+u":
		m.moveSelection(-max(page/2, 1))
	}
	return m, nil
}

// dispatch sends a to the store and re-reads the snapshot so the next
// render reflects it without waiting for the change notification.
func (m *Model) dispatch(a state.Action) {
	if m.store == nil {
		return
	}
	m.store.Dispatch(a)
	m.syncFromStore()
}

func (m *Model) syncFromStore() {
	if m.store == nil {
		return
	}
	m.applySnapshot(m.store.Snapshot())
}

// applySnapshot installs s, dropping cached search results when the
// collection changed since the last snapshot.
func (m *Model) applySnapshot(s state.Snapshot) {
	if m.engine != nil && !s.LastUpdated.Equal(m.snapshot.LastUpdated) {
		m.engine.Clear()
	}
	m.snapshot = s
	if m.mode != modeSearch {
		m.searchInput.SetValue(s.SearchQuery)
	}
	m.refreshRows()
}

func (m *Model) takeBackup() {
	m.backup = view.NewBackup(m.snapshot.Translations)
	m.hasBackup = true
}

// setNotice shows text in the footer for NoticeDuration.
func (m *Model) setNotice(text string, isError bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeError = isError
	return noticeCmd(m.noticeSeq)
}

// reportError records a rejected user action in the store.
func (m *Model) reportError(err error) {
	m.logger.Debug("action rejected", zap.Error(err))
	m.dispatch(actions.SetError(err))
}

func (m Model) cycleLocale(step int) (tea.Model, tea.Cmd) {
	next := cycleLocale(m.locales, m.snapshot.SelectedLocale, step)
	a, err := actions.SetSelectedLocale(next)
	if err != nil {
		m.reportError(err)
		return m, nil
	}
	m.dispatch(a)
	m.savePrefs()
	return m, nil
}

func (m Model) toggleMark() (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		return m, nil
	}
	a, err := actions.MarkModified(rec.Key, !rec.Modified)
	if err != nil {
		m.reportError(err)
		return m, nil
	}
	m.dispatch(a)
	return m, nil
}

func (m Model) copyKey() (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		return m, nil
	}
	if m.copy == nil {
		return m, m.setNotice("Clipboard unavailable", true)
	}
	return m, copyCmd(m.copy, rec.Key)
}

func (m Model) save() (tea.Model, tea.Cmd) {
	count := m.snapshot.ModifiedCount()
	m.dispatch(actions.SaveChanges())
	m.takeBackup()
	m.logger.Info("changes saved", zap.Int("modified", count), zap.String("backup", m.backup.ID))
	return m, m.setNotice(fmt.Sprintf("Saved %d %s", count, plural(count, "change", "changes")), false)
}

func (m Model) revert() (tea.Model, tea.Cmd) {
	if !m.hasBackup {
		m.dispatch(actions.CancelChanges(nil))
		return m, m.setNotice("Nothing to restore", false)
	}
	count := m.snapshot.ModifiedCount()
	m.dispatch(actions.CancelChanges(m.backup.Restore()))
	m.logger.Info("changes discarded", zap.Int("modified", count), zap.String("backup", m.backup.ID))
	return m, m.setNotice(fmt.Sprintf("Discarded %d %s", count, plural(count, "change", "changes")), false)
}

func (m Model) startReload() (tea.Model, tea.Cmd) {
	if !m.canReload {
		return m, m.setNotice("No remote endpoint configured", true)
	}
	if m.snapshot.Loading {
		return m, nil
	}
	return m, reloadCmd(m.ctx, m.reload)
}

// savePrefs persists theme, locale, sort order and filters.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{
		Theme:  m.theme.Name,
		Locale: m.snapshot.SelectedLocale,
		Sort:   m.sortMode.String(),
		Filter: prefs.Filter{OnlyModified: m.onlyModified, OnlyEmpty: m.onlyEmpty},
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.Error(err))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}

	changes := make(chan struct{}, 1)
	unsubscribe := opts.Store.Subscribe(func(state.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	m := New(opts)
	m.changes = changes

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
