package state

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/five82/locedit/internal/translation"
)

// DefaultLocale is selected when the store starts.
const DefaultLocale = translation.LocaleEnUS

// Snapshot is the complete editor state at a point in time.
type Snapshot struct {
	Translations   []translation.Translation
	SelectedLocale string
	// SearchQuery is exactly what the user committed, untrimmed.
	SearchQuery string
	// ModifiedKeys indexes the keys whose record has Modified set.
	ModifiedKeys map[string]struct{}
	Loading      bool
	// Error is a message for display; empty means no error.
	Error       string
	LastUpdated time.Time
}

// InitialSnapshot returns the state of a freshly created store.
func InitialSnapshot() Snapshot {
	return Snapshot{
		Translations:   []translation.Translation{},
		SelectedLocale: DefaultLocale,
		ModifiedKeys:   map[string]struct{}{},
	}
}

// HasError reports whether an error message is set.
func (s Snapshot) HasError() bool {
	return s.Error != ""
}

// IsModified reports whether key is in the modified index.
func (s Snapshot) IsModified(key string) bool {
	_, ok := s.ModifiedKeys[key]
	return ok
}

// ModifiedCount returns the number of modified records.
func (s Snapshot) ModifiedCount() int {
	return len(s.ModifiedKeys)
}

// SortedModifiedKeys returns the modified keys in lexical order.
func (s Snapshot) SortedModifiedKeys() []string {
	return slices.Sorted(maps.Keys(s.ModifiedKeys))
}

// Find returns the record with key and its index, or -1.
func (s Snapshot) Find(key string) (translation.Translation, int) {
	i := indexOf(s.Translations, key)
	if i < 0 {
		return translation.Translation{}, -1
	}
	return s.Translations[i], i
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Translations = translation.CloneAll(s.Translations)
	out.ModifiedKeys = maps.Clone(s.ModifiedKeys)
	return out
}

// CheckModifiedIndex rebuilds the modified index from the collection and
// compares it with the stored one.
func CheckModifiedIndex(s Snapshot) error {
	want := make(map[string]struct{})
	for _, t := range s.Translations {
		if t.Modified {
			want[t.Key] = struct{}{}
		}
	}
	var errs []error
	for key := range want {
		if _, ok := s.ModifiedKeys[key]; !ok {
			errs = append(errs, fmt.Errorf("modified key %q missing from index", key))
		}
	}
	for key := range s.ModifiedKeys {
		if _, ok := want[key]; !ok {
			errs = append(errs, fmt.Errorf("index holds %q which is not modified", key))
		}
	}
	return errors.Join(errs...)
}

// CheckUniqueKeys reports keys that occur more than once.
func CheckUniqueKeys(s Snapshot) error {
	seen := make(map[string]int, len(s.Translations))
	var errs []error
	for i, t := range s.Translations {
		if first, ok := seen[t.Key]; ok {
			errs = append(errs, fmt.Errorf("key %q at %d duplicates index %d", t.Key, i, first))
			continue
		}
		seen[t.Key] = i
	}
	return errors.Join(errs...)
}

// CheckInvariants runs every snapshot consistency check.
func CheckInvariants(s Snapshot) error {
	return errors.Join(CheckModifiedIndex(s), CheckUniqueKeys(s))
}

func indexOf(items []translation.Translation, key string) int {
	return slices.IndexFunc(items, func(t translation.Translation) bool { return t.Key == key })
}
