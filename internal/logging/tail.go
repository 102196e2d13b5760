package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap/zapcore"
)

// Entry is one decoded line of a JSON log file.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  map[string]string
	// Raw is the original line.
	Raw string
}

// Tail returns at most n lines from the end of the log at path. A missing
// file yields no lines.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, n)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count < n {
		copy(lines, ring[:count])
		return lines, nil
	}
	for i := range lines {
		lines[i] = ring[(next+i)%n]
	}
	return lines, nil
}

// ParseEntry decodes a line written by New. Lines that are not JSON objects
// come back with only Raw and Message set.
func ParseEntry(line string) Entry {
	entry := Entry{Raw: line, Message: line}
	if !gjson.Valid(line) {
		return entry
	}
	root := gjson.Parse(line)
	if !root.IsObject() {
		return entry
	}
	entry.Fields = make(map[string]string)
	root.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "ts":
			entry.Time = value.String()
		case "level":
			entry.Level = strings.ToLower(value.String())
		case "msg":
			entry.Message = value.String()
		case "caller", "stacktrace":
		default:
			entry.Fields[key.String()] = value.String()
		}
		return true
	})
	return entry
}

// AtLeast reports whether the entry's level is at or above min. Entries
// without a recognizable level always pass.
func (e Entry) AtLeast(min string) bool {
	if e.Level == "" {
		return true
	}
	want, err := parseLevel(min)
	if err != nil {
		return true
	}
	var got zapcore.Level
	if err := got.UnmarshalText([]byte(e.Level)); err != nil {
		return true
	}
	return got >= want
}

// FieldString renders the extra fields as sorted key=value pairs.
func (e Entry) FieldString() string {
	if len(e.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + e.Fields[k]
	}
	return strings.Join(parts, " ")
}
