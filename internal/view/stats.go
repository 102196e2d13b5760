package view

import (
	"math"
	"strings"

	"github.com/five82/locedit/internal/translation"
)

// LocaleStats counts completeness for one locale.
type LocaleStats struct {
	Total      int `json:"total" yaml:"total"`
	Complete   int `json:"complete" yaml:"complete"`
	Incomplete int `json:"incomplete" yaml:"incomplete"`
	Percentage int `json:"percentage" yaml:"percentage"`
}

// Stats summarizes a collection.
type Stats struct {
	Total      int                    `json:"total" yaml:"total"`
	Modified   int                    `json:"modified" yaml:"modified"`
	Complete   int                    `json:"complete" yaml:"complete"`
	Incomplete int                    `json:"incomplete" yaml:"incomplete"`
	Locales    []string               `json:"locales" yaml:"locales"`
	ByLocale   map[string]LocaleStats `json:"by_locale" yaml:"by_locale"`
}

// ComputeStats counts modified, complete and incomplete records. A record is
// complete when every locale in locales has a non-blank value. Nil locales
// means translation.RequiredLocales.
func ComputeStats(items []translation.Translation, locales []string) Stats {
	if locales == nil {
		locales = translation.RequiredLocales
	}
	stats := Stats{
		Total:    len(items),
		Locales:  append([]string(nil), locales...),
		ByLocale: make(map[string]LocaleStats, len(locales)),
	}
	for _, locale := range locales {
		stats.ByLocale[locale] = LocaleStats{}
	}

	for _, t := range items {
		if t.Modified {
			stats.Modified++
		}
		complete := true
		for _, locale := range locales {
			ls := stats.ByLocale[locale]
			ls.Total++
			if strings.TrimSpace(t.Locales[locale]) != "" {
				ls.Complete++
			} else {
				ls.Incomplete++
				complete = false
			}
			stats.ByLocale[locale] = ls
		}
		if complete {
			stats.Complete++
		} else {
			stats.Incomplete++
		}
	}

	for locale, ls := range stats.ByLocale {
		if ls.Total > 0 {
			ls.Percentage = int(math.Round(float64(ls.Complete) / float64(ls.Total) * 100))
		}
		stats.ByLocale[locale] = ls
	}
	return stats
}
