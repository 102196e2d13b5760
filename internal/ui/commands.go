package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/locedit/internal/state"
)

// snapshotMsg carries the store state after a change made outside Update.
type snapshotMsg state.Snapshot

// loadedMsg reports the end of the startup load.
type loadedMsg struct {
	source string
	err    error
}

// reloadedMsg reports the end of a user-requested reload.
type reloadedMsg struct {
	err error
}

// searchDebounceMsg fires once typing in the search box pauses.
type searchDebounceMsg struct {
	seq int
}

// noticeExpiredMsg clears a footer notice unless a newer one replaced it.
type noticeExpiredMsg struct {
	seq int
}

// copiedMsg reports a clipboard write.
type copiedMsg struct {
	key string
	err error
}

// waitForChange blocks until the store signals a change and then reads the
// latest snapshot. Signals are coalesced, so a burst of dispatches produces
// one message.
func waitForChange(changes <-chan struct{}, store *state.Store) tea.Cmd {
	if changes == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return snapshotMsg(store.Snapshot())
	}
}

func bootstrapCmd(ctx context.Context, load func(context.Context) (string, error)) tea.Cmd {
	if load == nil {
		return nil
	}
	return func() tea.Msg {
		source, err := load(ctx)
		return loadedMsg{source: source, err: err}
	}
}

func reloadCmd(ctx context.Context, reload func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
		defer cancel()
		return reloadedMsg{err: reload(ctx)}
	}
}

func debounceCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func noticeCmd(seq int) tea.Cmd {
	return tea.Tick(NoticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func copyCmd(copyFn func(string) error, key string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{key: key, err: copyFn(key)}
	}
}
