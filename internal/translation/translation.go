package translation

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"
)

// Locale codes every record carries.
const (
	LocaleEnUS = "en-us"
	LocaleZhTW = "zh-tw"
)

// ErrInvalidArgument marks malformed input passed by a caller.
var ErrInvalidArgument = errors.New("invalid argument")

// RequiredLocales lists the locales a record needs to be complete.
var RequiredLocales = []string{LocaleEnUS, LocaleZhTW}

// nowMillis is swapped in tests that need deterministic timestamps.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Translation is a single key with its base text and per-locale values.
type Translation struct {
	Key      string            `json:"key"`
	Base     string            `json:"base"`
	Locales  map[string]string `json:"locales"`
	Modified bool              `json:"modified"`
	Created  int64             `json:"created"`
	Updated  int64             `json:"updated"`
}

// Patch describes a shallow update applied to a record. Nil fields are left
// untouched.
type Patch struct {
	Base *string
	// Locales replaces the whole locale map.
	Locales map[string]string
	// LocaleValues is merged into the locale map after Locales is applied.
	LocaleValues map[string]string
	Modified     *bool
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Base == nil && p.Locales == nil && len(p.LocaleValues) == 0 && p.Modified == nil
}

// New builds a fully defaulted record. Zero created/updated values are
// replaced with the current time.
func New(key, base string, locales map[string]string, modified bool, created, updated int64) Translation {
	now := nowMillis()
	merged := make(map[string]string, len(locales)+2)
	maps.Copy(merged, locales)
	if _, ok := merged[LocaleEnUS]; !ok {
		merged[LocaleEnUS] = base
	}
	if _, ok := merged[LocaleZhTW]; !ok {
		merged[LocaleZhTW] = ""
	}
	if created == 0 {
		created = now
	}
	if updated == 0 {
		updated = now
	}
	return Translation{
		Key:      key,
		Base:     base,
		Locales:  merged,
		Modified: modified,
		Created:  created,
		Updated:  updated,
	}
}

// Validate performs a structural check and never panics.
func Validate(t Translation) bool {
	if strings.TrimSpace(t.Key) == "" {
		return false
	}
	if t.Locales == nil {
		return false
	}
	for code := range t.Locales {
		if strings.TrimSpace(code) == "" {
			return false
		}
	}
	return t.Created >= 0 && t.Updated >= 0
}

// UpdateLocale returns a copy of t with locale set to value. Modified reflects
// whether the value differs from the one it replaces.
func UpdateLocale(t Translation, locale, value string) (Translation, error) {
	if !Validate(t) {
		return Translation{}, fmt.Errorf("%w: invalid translation object", ErrInvalidArgument)
	}
	if strings.TrimSpace(locale) == "" {
		return Translation{}, fmt.Errorf("%w: invalid locale code", ErrInvalidArgument)
	}
	previous, had := t.Locales[locale]
	out := t.Clone()
	out.Locales[locale] = value
	out.Modified = !had || previous != value
	out.Updated = nowMillis()
	return out, nil
}

// MarkModified returns a copy of t with the modified flag set explicitly.
func MarkModified(t Translation, modified bool) (Translation, error) {
	if !Validate(t) {
		return Translation{}, fmt.Errorf("%w: invalid translation object", ErrInvalidArgument)
	}
	out := t.Clone()
	out.Modified = modified
	out.Updated = nowMillis()
	return out, nil
}

// Search reports whether query occurs, case-insensitively, in the key, the
// base text, or any locale value.
func Search(t Translation, query string) bool {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" || !Validate(t) {
		return false
	}
	if strings.Contains(strings.ToLower(t.Key), term) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Base), term) {
		return true
	}
	for _, value := range t.Locales {
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}

// Locales returns the locale codes of t, required locales first and the rest
// sorted.
func Locales(t Translation) []string {
	if !Validate(t) {
		return nil
	}
	codes := make([]string, 0, len(t.Locales))
	for _, code := range RequiredLocales {
		if _, ok := t.Locales[code]; ok {
			codes = append(codes, code)
		}
	}
	var rest []string
	for code := range t.Locales {
		if !slices.Contains(RequiredLocales, code) {
			rest = append(rest, code)
		}
	}
	slices.Sort(rest)
	return append(codes, rest...)
}

// HasLocale reports whether t has a non-blank value for locale.
func HasLocale(t Translation, locale string) bool {
	if locale == "" || !Validate(t) {
		return false
	}
	return strings.TrimSpace(t.Locales[locale]) != ""
}

// Complete reports whether every required locale has a non-blank value.
func Complete(t Translation) bool {
	return CompleteFor(t, RequiredLocales)
}

// CompleteFor reports whether every locale in required has a non-blank value.
func CompleteFor(t Translation, required []string) bool {
	for _, locale := range required {
		if strings.TrimSpace(t.Locales[locale]) == "" {
			return false
		}
	}
	return true
}

// Clone returns a copy of t that shares no maps with it.
func (t Translation) Clone() Translation {
	out := t
	if t.Locales != nil {
		out.Locales = maps.Clone(t.Locales)
	}
	return out
}

// Apply returns a copy of t with p applied. The caller refreshes timestamps.
func (t Translation) Apply(p Patch) Translation {
	out := t.Clone()
	if p.Base != nil {
		out.Base = *p.Base
	}
	if p.Locales != nil {
		out.Locales = maps.Clone(p.Locales)
	}
	if len(p.LocaleValues) > 0 {
		if out.Locales == nil {
			out.Locales = make(map[string]string, len(p.LocaleValues))
		}
		maps.Copy(out.Locales, p.LocaleValues)
	}
	if p.Modified != nil {
		out.Modified = *p.Modified
	}
	return out
}

// CloneAll deep-copies a collection.
func CloneAll(items []Translation) []Translation {
	if items == nil {
		return nil
	}
	dup := make([]Translation, len(items))
	for i, item := range items {
		dup[i] = item.Clone()
	}
	return dup
}
