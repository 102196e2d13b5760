package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/five82/locedit/internal/export"
)

const catalog = `{
  "fund.title": {"base": "Fund Finder", "zh-tw": "基金搜尋"},
  "region.asia": {"base": "Asia", "zh-tw": "亞洲"},
  "region.europe": {"base": "Europe"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOCEDIT_API_URL", "")
	cfg := filepath.Join(t.TempDir(), "config.toml")
	envFile := filepath.Join(t.TempDir(), "missing.env")

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", cfg, "--env-file", envFile}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExportYAMLKeepsOrder(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	out, _, err := execute(t, "export", "--input", input, "--format", "yaml")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	first := strings.Index(out, "fund.title:")
	last := strings.Index(out, "region.europe:")
	if first < 0 || last < 0 || first > last {
		t.Fatalf("unexpected order:\n%s", out)
	}
	if !strings.Contains(out, "基金搜尋") {
		t.Fatalf("missing translation:\n%s", out)
	}
}

func TestExportToFileRoundTrips(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	output := filepath.Join(t.TempDir(), "out.yaml")
	if _, _, err := execute(t, "export", "-i", input, "-o", output, "--sort", "key"); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	entries, err := export.Decode(data, export.FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 3 || entries[0].Key != "fund.title" {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[1].Data["zh-tw"] != "亞洲" {
		t.Fatalf("asia = %+v", entries[1])
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	if _, _, err := execute(t, "export", "-i", input, "--format", "xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestExportFallsBackToSample(t *testing.T) {
	out, _, err := execute(t, "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	entries, err := export.Decode([]byte(out), export.FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected sample entries")
	}
}

func TestStatsYAML(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	out, _, err := execute(t, "stats", "-i", input, "--format", "yaml", "--groups")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	var report struct {
		Stats struct {
			Total      int `yaml:"total"`
			Incomplete int `yaml:"incomplete"`
		} `yaml:"stats"`
		Groups map[string]int `yaml:"groups"`
	}
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if report.Stats.Total != 3 {
		t.Fatalf("total = %d", report.Stats.Total)
	}
	if report.Stats.Incomplete == 0 {
		t.Fatal("region.europe lacks zh-tw and other locales; expected incomplete records")
	}
	if report.Groups["F"] != 1 || report.Groups["R"] != 2 {
		t.Fatalf("groups = %v", report.Groups)
	}
}

func TestStatsText(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	out, _, err := execute(t, "stats", "-i", input)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Keys:        3", "LOCALE", "zh-tw"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSearchHighlightsMatches(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	out, errOut, err := execute(t, "search", "-i", input, "asia")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.HasPrefix(out, "region.asia\n") {
		t.Fatalf("output:\n%s", out)
	}
	if !strings.Contains(out, "[Asia]") {
		t.Fatalf("expected highlighted base:\n%s", out)
	}
	if !strings.Contains(errOut, "1 of 3 keys matched") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestSearchRejectsUnknownField(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	if _, _, err := execute(t, "search", "-i", input, "--fields", "key,notes", "x"); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestValidate(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	out, _, err := execute(t, "validate", "-i", input)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "3 valid, 0 invalid, 0 duplicate, 1 incomplete") {
		t.Fatalf("output:\n%s", out)
	}

	if _, _, err := execute(t, "validate", "-i", input, "--strict"); err == nil {
		t.Fatal("strict validation should fail on missing locales")
	}
}

func TestMergeAppliesOnlyNamedFields(t *testing.T) {
	input := writeFile(t, "catalog.json", catalog)
	changes := writeFile(t, "changes.json", `{
  "region.europe": {"zh-tw": "歐洲"},
  "region.africa": {"base": "Africa"}
}`)
	out, errOut, err := execute(t, "merge", "-i", input, changes)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	entries, err := export.Decode([]byte(out), export.FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(entries) != 4 || entries[3].Key != "region.africa" {
		t.Fatalf("entries = %+v", entries)
	}
	europe := entries[2]
	if europe.Data["zh-tw"] != "歐洲" || europe.Data["base"] != "Europe" {
		t.Fatalf("europe = %+v", europe)
	}
	if !strings.Contains(errOut, "merged 2 changes into 4 keys") {
		t.Fatalf("stderr = %q", errOut)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "locedit version ") {
		t.Fatalf("output = %q", out)
	}
}

func TestLogsFiltersByLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "locedit.log")
	content := `{"level":"info","ts":"2026-10-18T10:00:00.000Z","msg":"starting locedit"}
{"level":"warn","ts":"2026-10-18T10:00:01.000Z","msg":"failed to fetch translations","url":"http://x"}
`
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	t.Setenv("LOCEDIT_LOG_FILE", logPath)

	out, _, err := execute(t, "logs", "--level", "warn")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if strings.Contains(out, "starting locedit") {
		t.Fatalf("info entry not filtered:\n%s", out)
	}
	if !strings.Contains(out, "failed to fetch translations") || !strings.Contains(out, "url=http://x") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestLogsWithoutLogFile(t *testing.T) {
	t.Setenv("LOCEDIT_LOG_FILE", "")
	if _, _, err := execute(t, "logs"); err == nil {
		t.Fatal("expected error without log_file")
	}
}

func TestLogsKeepsUnleveledLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "locedit.log")
	content := `{"level":"info","ts":"2026-10-18T10:00:00.000Z","msg":"starting locedit"}
panic: runtime error: index out of range
`
	if err := os.WriteFile(logPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	t.Setenv("LOCEDIT_LOG_FILE", logPath)

	out, _, err := execute(t, "logs", "--level", "error")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if strings.Contains(out, "starting locedit") {
		t.Fatalf("info entry not filtered:\n%s", out)
	}
	if !strings.Contains(out, "panic: runtime error") {
		t.Fatalf("plain line hidden:\n%s", out)
	}
}
