package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/locedit/internal/translation"
)

func TestEngine_CachesIdenticalQueries(t *testing.T) {
	e := NewEngine(10)
	records := sampleRecords()

	first := e.Search(records, "asia", Options{})
	second := e.Search(records, "asia", Options{})
	assert.Equal(t, first, second)

	stats := e.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, 1, stats.Hits)
	assert.Equal(t, 1, stats.Misses)
}

func TestEngine_OptionsAndKeysChangeFingerprint(t *testing.T) {
	e := NewEngine(10)
	records := sampleRecords()

	e.Search(records, "asia", Options{})
	e.Search(records, "asia", Options{CaseSensitive: true})
	e.Search(records[:2], "asia", Options{})
	assert.Equal(t, 3, e.Stats().Entries)
}

func TestEngine_EvictsOldestInsertion(t *testing.T) {
	e := NewEngine(2)
	records := sampleRecords()

	e.Search(records, "a", Options{})
	e.Search(records, "b", Options{})
	e.Search(records, "a", Options{}) // hit, does not refresh position
	e.Search(records, "c", Options{})

	assert.Equal(t, 2, e.Stats().Entries)

	before := e.Stats().Misses
	e.Search(records, "a", Options{})
	assert.Equal(t, before+1, e.Stats().Misses, "oldest entry should have been evicted")
}

func TestEngine_BoundedAcrossManyQueries(t *testing.T) {
	e := NewEngine(5)
	records := sampleRecords()
	for i := 0; i < 50; i++ {
		e.Search(records, fmt.Sprintf("q%d", i), Options{})
	}
	assert.Equal(t, 5, e.Stats().Entries)
}

func TestEngine_StaleUntilCleared(t *testing.T) {
	e := NewEngine(10)
	records := sampleRecords()
	require.Empty(t, e.Search(records, "oceania", Options{}))

	edited, err := translation.UpdateLocale(records[0], translation.LocaleEnUS, "Oceania")
	require.NoError(t, err)
	records[0] = edited

	assert.Empty(t, e.Search(records, "oceania", Options{}), "same keys hit the stale entry")

	e.Clear()
	assert.Len(t, e.Search(records, "oceania", Options{}), 1)
}

func TestNewEngine_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCacheCapacity, NewEngine(0).Stats().Capacity)
}
