package ui

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// localeName returns the English display name of a locale code, or the code
// itself when it does not parse.
func localeName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// localeLabel renders a locale for headers: code, English name and the
// name in the locale's own language when that differs.
func localeLabel(code string) string {
	if strings.TrimSpace(code) == "" {
		return "none"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	label := code + " · " + localeName(code)
	if self := display.Self.Name(tag); self != "" && self != localeName(code) {
		label += " (" + self + ")"
	}
	return label
}

// collationTag picks collation rules for sorting keys while a locale is
// selected. Keys are identifiers, so anything unparseable sorts as English.
func collationTag(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English
	}
	return tag
}

// cycleLocale returns the locale step positions away from current in
// locales, wrapping around. An unknown current starts from the first entry.
func cycleLocale(locales []string, current string, step int) string {
	if len(locales) == 0 {
		return current
	}
	i := slices.Index(locales, current)
	if i < 0 {
		if step > 0 {
			return locales[0]
		}
		return locales[len(locales)-1]
	}
	n := len(locales)
	return locales[((i+step)%n+n)%n]
}
