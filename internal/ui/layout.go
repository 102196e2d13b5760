package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the base column is hidden.
	LayoutCompactWidth = 80

	// LayoutWideWidth is the width from which the updated column is shown.
	LayoutWideWidth = 140
)

// Grid geometry.
const (
	// markerWidth holds the modified and incomplete markers.
	markerWidth = 3

	// keyColumnMin and keyColumnMax bound the key column.
	keyColumnMin = 16
	keyColumnMax = 48

	// updatedColumnWidth fits "2006-01-02 15:04".
	updatedColumnWidth = 16

	// chromeLines counts header, search bar, column header and footer.
	chromeLines = 4
)

// Timing constants.
const (
	// DefaultSearchDebounce applies when no debounce is configured.
	DefaultSearchDebounce = 300 * time.Millisecond

	// FetchTimeout bounds a reload started from the UI.
	FetchTimeout = 15 * time.Second

	// NoticeDuration is how long a transient footer notice stays visible.
	NoticeDuration = 3 * time.Second
)
