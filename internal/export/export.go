// Package export converts a translation collection to and from payload files
// in JSON or YAML. Both formats keep collection order and write each entry as
// base followed by its locales.
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/locedit/internal/translation"
)

// Format names a payload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", translation.ErrInvalidArgument, s)
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes items in format f.
func Encode(items []translation.Translation, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return translation.EncodePayload(items)
	case FormatYAML:
		return encodeYAML(items)
	}
	return nil, fmt.Errorf("%w: unknown format %q", translation.ErrInvalidArgument, f)
}

// Decode parses a payload in format f.
func Decode(data []byte, f Format) ([]translation.APIEntry, error) {
	switch f {
	case FormatJSON:
		return translation.ParsePayload(data)
	case FormatYAML:
		return decodeYAML(data)
	}
	return nil, fmt.Errorf("%w: unknown format %q", translation.ErrInvalidArgument, f)
}

func encodeYAML(items []translation.Translation) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range items {
		if !translation.Validate(item) {
			return nil, fmt.Errorf("%w: invalid translation %q", translation.ErrInvalidArgument, item.Key)
		}
		entry := &yaml.Node{Kind: yaml.MappingNode}
		entry.Content = append(entry.Content, str("base"), str(item.Base))
		for _, locale := range translation.Locales(item) {
			entry.Content = append(entry.Content, str(locale), str(item.Locales[locale]))
		}
		root.Content = append(root.Content, str(item.Key), entry)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeYAML(data []byte) ([]translation.APIEntry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: payload is not valid YAML: %v", translation.ErrInvalidArgument, err)
	}
	if len(doc.Content) == 0 {
		return []translation.APIEntry{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: payload must be a mapping", translation.ErrInvalidArgument)
	}

	var entries []translation.APIEntry
	index := make(map[string]int)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		value := root.Content[i+1]
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: entry %q is not a mapping", translation.ErrInvalidArgument, name)
		}
		fields := make(map[string]string, len(value.Content)/2)
		for j := 0; j+1 < len(value.Content); j += 2 {
			if v := value.Content[j+1]; v.Kind == yaml.ScalarNode && v.Tag != "!!null" {
				fields[value.Content[j].Value] = v.Value
			}
		}
		if at, ok := index[name]; ok {
			entries[at].Data = fields
			continue
		}
		index[name] = len(entries)
		entries = append(entries, translation.APIEntry{Key: name, Data: fields})
	}
	return entries, nil
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
