package translation

import (
	"fmt"
	"maps"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// baseField is the payload field carrying the base text.
const baseField = "base"

// APIEntry is one key of the inbound payload with its raw fields.
type APIEntry struct {
	Key  string
	Data map[string]string
}

// ParsePayload decodes a key -> {base, locale: value} object, keeping the
// order in which keys appear in the document. A key repeated later in the
// document keeps its first position and takes the later fields.
func ParsePayload(data []byte) ([]APIEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrInvalidArgument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: payload must be a JSON object", ErrInvalidArgument)
	}

	var (
		entries  []APIEntry
		index    = make(map[string]int)
		parseErr error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if !value.IsObject() {
			parseErr = fmt.Errorf("%w: entry %q is not an object", ErrInvalidArgument, name)
			return false
		}
		fields := make(map[string]string)
		value.ForEach(func(field, v gjson.Result) bool {
			switch v.Type {
			case gjson.String, gjson.Number, gjson.True, gjson.False:
				fields[field.String()] = v.String()
			}
			return true
		})
		if i, ok := index[name]; ok {
			entries[i].Data = fields
			return true
		}
		index[name] = len(entries)
		entries = append(entries, APIEntry{Key: name, Data: fields})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return entries, nil
}

// FromAPIData converts one payload entry into a record. The base field is
// split out of the locale map.
func FromAPIData(key string, data map[string]string) (Translation, error) {
	if strings.TrimSpace(key) == "" || data == nil {
		return Translation{}, fmt.Errorf("%w: invalid API data", ErrInvalidArgument)
	}
	locales := maps.Clone(data)
	delete(locales, baseField)
	return New(key, data[baseField], locales, false, 0, 0), nil
}

// ToAPIData converts a record into its payload form.
func ToAPIData(t Translation) (map[string]string, error) {
	if !Validate(t) {
		return nil, fmt.Errorf("%w: invalid translation object", ErrInvalidArgument)
	}
	out := make(map[string]string, len(t.Locales)+1)
	maps.Copy(out, t.Locales)
	out[baseField] = t.Base
	return out, nil
}

// EncodePayload writes the collection as an indented payload object in
// collection order. Within an entry base comes first, then required locales,
// then the remaining locales sorted.
func EncodePayload(items []Translation) ([]byte, error) {
	out := []byte("{}")
	for _, item := range items {
		if !Validate(item) {
			return nil, fmt.Errorf("%w: invalid translation %q", ErrInvalidArgument, item.Key)
		}
		entry, err := sjson.SetBytes([]byte("{}"), escapePath(baseField), item.Base)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", item.Key, err)
		}
		for _, code := range Locales(item) {
			if code == baseField {
				continue
			}
			entry, err = sjson.SetBytes(entry, escapePath(code), item.Locales[code])
			if err != nil {
				return nil, fmt.Errorf("encode %q: %w", item.Key, err)
			}
		}
		out, err = sjson.SetRawBytes(out, escapePath(item.Key), entry)
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", item.Key, err)
		}
	}
	return pretty.Pretty(out), nil
}

// escapePath escapes characters that carry meaning in sjson paths.
func escapePath(component string) string {
	var b strings.Builder
	for _, r := range component {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
