package state

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/locedit/internal/translation"
)

// Reducer computes the next snapshot for an action. The zero value uses
// time.Now and discards logs.
type Reducer struct {
	Now    func() time.Time
	Logger *zap.Logger
}

// Reduce returns the snapshot that results from applying a to s. It never
// panics on bad input and never mutates s; domain failures are reported in
// the returned snapshot's Error with everything else unchanged.
func (r Reducer) Reduce(s Snapshot, a Action) Snapshot {
	if a == nil {
		r.logger().Warn("nil action ignored")
		return s
	}
	now := r.now()

	switch a := a.(type) {
	case Load:
		s.Translations = asBaseline(a.Translations)
		s.ModifiedKeys = map[string]struct{}{}
		s.Loading = false
		s.Error = ""
		s.LastUpdated = now
		return s

	case Add:
		if !translation.Validate(a.Translation) {
			s.Error = "Invalid translation object"
			return s
		}
		if indexOf(s.Translations, a.Translation.Key) >= 0 {
			s.Error = fmt.Sprintf("Translation with key %q already exists", a.Translation.Key)
			return s
		}
		s.Translations = append(slices.Clip(s.Translations), a.Translation.Clone())
		s.ModifiedKeys = withModified(s.ModifiedKeys, a.Translation.Key, a.Translation.Modified)
		s.Error = ""
		s.LastUpdated = now
		return s

	case Update:
		i := indexOf(s.Translations, a.Key)
		if i < 0 {
			s.Error = notFound(a.Key)
			return s
		}
		rec := s.Translations[i].Apply(a.Patch)
		rec.Updated = now.UnixMilli()
		s.Translations = replaceAt(s.Translations, i, rec)
		s.ModifiedKeys = withModified(s.ModifiedKeys, a.Key, rec.Modified)
		s.Error = ""
		s.LastUpdated = now
		return s

	case Delete:
		i := indexOf(s.Translations, a.Key)
		if i < 0 {
			s.Error = notFound(a.Key)
			return s
		}
		s.Translations = slices.Delete(slices.Clone(s.Translations), i, i+1)
		s.ModifiedKeys = withModified(s.ModifiedKeys, a.Key, false)
		s.Error = ""
		s.LastUpdated = now
		return s

	case SetSearchQuery:
		s.SearchQuery = a.Query
		s.Error = ""
		return s

	case SetSelectedLocale:
		if strings.TrimSpace(a.Locale) == "" {
			s.Error = "Invalid locale specified"
			return s
		}
		s.SelectedLocale = a.Locale
		s.Error = ""
		return s

	case MarkModified:
		i := indexOf(s.Translations, a.Key)
		if i < 0 {
			s.Error = notFound(a.Key)
			return s
		}
		rec := s.Translations[i].Clone()
		rec.Modified = a.Modified
		rec.Updated = now.UnixMilli()
		s.Translations = replaceAt(s.Translations, i, rec)
		s.ModifiedKeys = withModified(s.ModifiedKeys, a.Key, a.Modified)
		s.Error = ""
		s.LastUpdated = now
		return s

	case SaveChanges:
		saved := make([]translation.Translation, len(s.Translations))
		for i, t := range s.Translations {
			t.Modified = false
			t.Updated = now.UnixMilli()
			saved[i] = t
		}
		s.Translations = saved
		s.ModifiedKeys = map[string]struct{}{}
		s.Error = ""
		s.LastUpdated = now
		return s

	case CancelChanges:
		s.Error = ""
		if a.Original == nil {
			a.Original = s.Translations
		}
		s.Translations = asBaseline(a.Original)
		s.ModifiedKeys = map[string]struct{}{}
		s.LastUpdated = now
		return s

	case SetLoading:
		s.Loading = a.Loading
		return s

	case SetError:
		s.Error = a.Message
		s.Loading = false
		return s

	case ClearError:
		s.Error = ""
		return s

	default:
		r.logger().Warn("unknown action", zap.String("kind", string(a.Kind())))
		return s
	}
}

func (r Reducer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func (r Reducer) logger() *zap.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return zap.NewNop()
}

func notFound(key string) string {
	return fmt.Sprintf("Translation with key %q not found", key)
}

// asBaseline copies items with the modified flag cleared; a loaded or
// restored collection is by definition unmodified.
func asBaseline(items []translation.Translation) []translation.Translation {
	out := make([]translation.Translation, len(items))
	for i, t := range items {
		t = t.Clone()
		t.Modified = false
		out[i] = t
	}
	return out
}

func replaceAt(items []translation.Translation, i int, rec translation.Translation) []translation.Translation {
	out := slices.Clone(items)
	out[i] = rec
	return out
}

func withModified(keys map[string]struct{}, key string, modified bool) map[string]struct{} {
	out := maps.Clone(keys)
	if out == nil {
		out = make(map[string]struct{})
	}
	if modified {
		out[key] = struct{}{}
	} else {
		delete(out, key)
	}
	return out
}
