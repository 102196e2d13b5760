package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"zero", 0, nil},
		{"fewer than file", 3, all[7:]},
		{"exact", 10, all},
		{"more than file", 20, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tail(path, tt.n)
			if err != nil {
				t.Fatalf("Tail: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Tail(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestTail_MissingFile(t *testing.T) {
	lines, err := Tail(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || lines != nil {
		t.Fatalf("Tail = %v, %v; want nil, nil", lines, err)
	}
}

func TestParseEntry_RoundTripsLoggerOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locedit.log")
	logger, err := New(Options{Path: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("noise")
	logger.Warn("fetch failed", zap.String("url", "http://example"), zap.Int("attempt", 2))
	_ = logger.Sync()

	lines, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	entry := ParseEntry(lines[1])
	if entry.Level != "warn" || entry.Message != "fetch failed" {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.Time == "" {
		t.Fatal("expected timestamp")
	}
	if got := entry.FieldString(); got != "attempt=2 url=http://example" {
		t.Fatalf("FieldString = %q", got)
	}
	if !entry.AtLeast("warn") || entry.AtLeast("error") {
		t.Fatal("warn entry level comparison is wrong")
	}
	if ParseEntry(lines[0]).AtLeast("info") {
		t.Fatal("debug entry should not pass info")
	}
}

func TestParseEntry_PlainText(t *testing.T) {
	entry := ParseEntry("panic: boom")
	if entry.Message != "panic: boom" || entry.Level != "" {
		t.Fatalf("entry = %+v", entry)
	}
	for _, min := range []string{"debug", "info", "warn", "error"} {
		if !entry.AtLeast(min) {
			t.Fatalf("unleveled line hidden at --level %s", min)
		}
	}
}
