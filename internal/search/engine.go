package search

import (
	"slices"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/five82/locedit/internal/translation"
)

// DefaultCacheCapacity bounds an Engine created with a non-positive capacity.
const DefaultCacheCapacity = 100

// Engine memoizes AdvancedSearch. Once the cache is full the oldest inserted
// entry is dropped.
type Engine struct {
	mu       sync.Mutex
	capacity int
	entries  map[uint64][]Result
	order    []uint64

	hits   int
	misses int
}

// CacheStats reports cache usage.
type CacheStats struct {
	Entries  int
	Capacity int
	Hits     int
	Misses   int
}

// NewEngine returns an Engine whose cache holds at most capacity results.
func NewEngine(capacity int) *Engine {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Engine{
		capacity: capacity,
		entries:  make(map[uint64][]Result, capacity),
	}
}

// Search returns cached results for an identical (keys, query, options)
// triple, computing and storing them otherwise. The returned slice is a copy;
// the records inside it must be treated as read-only.
func (e *Engine) Search(records []translation.Translation, query string, opts Options) []Result {
	key := fingerprint(records, query, opts)

	e.mu.Lock()
	if cached, ok := e.entries[key]; ok {
		e.hits++
		e.mu.Unlock()
		return slices.Clone(cached)
	}
	e.misses++
	e.mu.Unlock()

	results := AdvancedSearch(records, query, opts)

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.entries[key]; !ok {
		for len(e.entries) >= e.capacity && len(e.order) > 0 {
			oldest := e.order[0]
			e.order = e.order[1:]
			delete(e.entries, oldest)
		}
		e.order = append(e.order, key)
	}
	e.entries[key] = results
	return slices.Clone(results)
}

// Clear drops every cached result.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.entries = make(map[uint64][]Result, e.capacity)
	e.order = nil
}

// Stats returns a snapshot of cache usage.
func (e *Engine) Stats() CacheStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CacheStats{
		Entries:  len(e.entries),
		Capacity: e.capacity,
		Hits:     e.hits,
		Misses:   e.misses,
	}
}

func fingerprint(records []translation.Translation, query string, opts Options) uint64 {
	d := xxhash.New()
	for _, rec := range records {
		_, _ = d.WriteString(rec.Key)
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.Write([]byte{1})
	_, _ = d.WriteString(query)
	_, _ = d.Write([]byte{1})
	for _, f := range opts.Fields {
		_, _ = d.WriteString(string(f))
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.WriteString(strconv.FormatBool(opts.CaseSensitive))
	_, _ = d.WriteString(strconv.FormatBool(opts.ExactMatch))
	_, _ = d.WriteString(strconv.FormatBool(opts.IncludeMetadata))
	return d.Sum64()
}
