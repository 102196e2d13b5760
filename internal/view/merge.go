package view

import (
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/five82/locedit/internal/translation"
)

// nowMillis is replaced in tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Change is one entry of an update list passed to Merge.
type Change struct {
	Key  string
	Base *string
	// Locales is merged into the existing locale map.
	Locales  map[string]string
	Modified *bool
}

// Merge applies changes to items and returns the merged collection. Existing
// records keep their position and have their locale maps merged; changes for
// unknown keys are appended as new records in the order they appear.
func Merge(items []translation.Translation, changes []Change) []translation.Translation {
	out := translation.CloneAll(items)
	if out == nil {
		out = []translation.Translation{}
	}
	index := make(map[string]int, len(out))
	for i, t := range out {
		if _, ok := index[t.Key]; !ok {
			index[t.Key] = i
		}
	}

	now := nowMillis()
	for _, c := range changes {
		i, ok := index[c.Key]
		if !ok {
			var base string
			if c.Base != nil {
				base = *c.Base
			}
			modified := c.Modified != nil && *c.Modified
			index[c.Key] = len(out)
			out = append(out, translation.New(c.Key, base, c.Locales, modified, now, now))
			continue
		}

		rec := out[i]
		if c.Base != nil {
			rec.Base = *c.Base
		}
		if rec.Locales == nil {
			rec.Locales = make(map[string]string, len(c.Locales))
		}
		maps.Copy(rec.Locales, c.Locales)
		if c.Modified != nil {
			rec.Modified = *c.Modified
		}
		rec.Updated = now
		out[i] = rec
	}
	return out
}

// Backup is a point-in-time copy of a collection.
type Backup struct {
	ID           string
	Timestamp    time.Time
	Count        int
	Translations []translation.Translation
}

// NewBackup deep-copies items so later edits to the live collection do not
// reach the backup.
func NewBackup(items []translation.Translation) Backup {
	copied := translation.CloneAll(items)
	if copied == nil {
		copied = []translation.Translation{}
	}
	return Backup{
		ID:           uuid.NewString(),
		Timestamp:    time.UnixMilli(nowMillis()),
		Count:        len(copied),
		Translations: copied,
	}
}

// Restore returns a fresh copy of the backed up collection.
func (b Backup) Restore() []translation.Translation {
	return translation.CloneAll(b.Translations)
}
