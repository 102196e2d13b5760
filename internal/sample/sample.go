// Package sample provides the built-in translation set used when the remote
// payload cannot be loaded.
package sample

import (
	_ "embed"
	"fmt"

	"github.com/five82/locedit/internal/translation"
)

//go:embed translations.json
var payload []byte

// Payload returns the raw embedded payload.
func Payload() []byte {
	out := make([]byte, len(payload))
	copy(out, payload)
	return out
}

// Entries parses the embedded payload.
func Entries() ([]translation.APIEntry, error) {
	entries, err := translation.ParsePayload(payload)
	if err != nil {
		return nil, fmt.Errorf("parse sample data: %w", err)
	}
	return entries, nil
}

// Load returns the sample collection in payload order.
func Load() ([]translation.Translation, error) {
	entries, err := Entries()
	if err != nil {
		return nil, err
	}
	items := make([]translation.Translation, 0, len(entries))
	for _, e := range entries {
		t, err := translation.FromAPIData(e.Key, e.Data)
		if err != nil {
			return nil, fmt.Errorf("sample entry %q: %w", e.Key, err)
		}
		items = append(items, t)
	}
	return items, nil
}
