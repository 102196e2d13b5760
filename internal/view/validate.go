package view

import (
	"strings"

	"github.com/five82/locedit/internal/translation"
)

// Finding identifies one record in a validation report.
type Finding struct {
	Index  int    `json:"index" yaml:"index"`
	Key    string `json:"key" yaml:"key"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Report is the result of ValidateAll.
type Report struct {
	Valid      []Finding `json:"valid" yaml:"valid"`
	Invalid    []Finding `json:"invalid" yaml:"invalid"`
	Duplicates []Finding `json:"duplicates" yaml:"duplicates"`
}

// OK reports whether no record is invalid or duplicated.
func (r Report) OK() bool {
	return len(r.Invalid) == 0 && len(r.Duplicates) == 0
}

// ValidateAll checks every record's structure and flags repeated keys. A
// repeat is listed under Duplicates and is still judged on its own
// structure.
func ValidateAll(items []translation.Translation) Report {
	report := Report{
		Valid:      []Finding{},
		Invalid:    []Finding{},
		Duplicates: []Finding{},
	}
	seen := make(map[string]struct{}, len(items))

	for i, t := range items {
		if _, ok := seen[t.Key]; ok {
			report.Duplicates = append(report.Duplicates, Finding{Index: i, Key: t.Key, Reason: "duplicate translation key"})
		} else {
			seen[t.Key] = struct{}{}
		}

		if reason := invalidReason(t); reason != "" {
			report.Invalid = append(report.Invalid, Finding{Index: i, Key: t.Key, Reason: reason})
			continue
		}
		report.Valid = append(report.Valid, Finding{Index: i, Key: t.Key})
	}
	return report
}

func invalidReason(t translation.Translation) string {
	switch {
	case strings.TrimSpace(t.Key) == "":
		return "invalid or missing key"
	case t.Locales == nil:
		return "invalid locales object"
	case !translation.Validate(t):
		return "invalid translation object"
	}
	return ""
}
