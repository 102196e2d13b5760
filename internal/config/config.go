package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings.
type Config struct {
	APIURL           string   `toml:"api_url" env:"API_URL"`
	TimeoutSeconds   int      `toml:"timeout_seconds" env:"TIMEOUT_SECONDS"`
	Locales          []string `toml:"locales" env:"LOCALES"`
	RequiredLocales  []string `toml:"required_locales" env:"REQUIRED_LOCALES"`
	DebounceMS       int      `toml:"debounce_ms" env:"DEBOUNCE_MS"`
	SearchCacheSize  int      `toml:"search_cache_size" env:"SEARCH_CACHE_SIZE"`
	LogFile          string   `toml:"log_file" env:"LOG_FILE"`
	LogLevel         string   `toml:"log_level" env:"LOG_LEVEL"`
	FallbackToSample bool     `toml:"fallback_to_sample" env:"FALLBACK_TO_SAMPLE"`
}

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "LOCEDIT_"

const (
	defaultConfigPath      = "~/.config/locedit/config.toml"
	defaultTimeoutSeconds  = 10
	defaultDebounceMS      = 300
	defaultSearchCacheSize = 100
	defaultLogLevel        = "info"
)

var (
	defaultLocales         = []string{"en-us", "zh-tw", "ja-jp", "ko-kr", "es-es", "fr-fr", "de-de"}
	defaultRequiredLocales = []string{"en-us", "zh-tw"}
	validLogLevels         = []string{"debug", "info", "warn", "error"}
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		TimeoutSeconds:   defaultTimeoutSeconds,
		Locales:          slices.Clone(defaultLocales),
		RequiredLocales:  slices.Clone(defaultRequiredLocales),
		DebounceMS:       defaultDebounceMS,
		SearchCacheSize:  defaultSearchCacheSize,
		LogLevel:         defaultLogLevel,
		FallbackToSample: true,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the TOML file at path (or the default path), applies LOCEDIT_*
// environment overrides and normalizes the result. A missing file is not an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is
// ignored.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Timeout returns the remote fetch timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Debounce returns the quiet period before a typed query is committed.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// HasRemote reports whether an API URL is configured.
func (c Config) HasRemote() bool {
	return strings.TrimSpace(c.APIURL) != ""
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

func (c *Config) normalize() error {
	c.APIURL = strings.TrimSpace(c.APIURL)

	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = defaultTimeoutSeconds
	}
	if c.DebounceMS < 0 {
		c.DebounceMS = defaultDebounceMS
	}
	if c.SearchCacheSize <= 0 {
		c.SearchCacheSize = defaultSearchCacheSize
	}

	c.RequiredLocales = cleanLocales(c.RequiredLocales)
	if len(c.RequiredLocales) == 0 {
		c.RequiredLocales = slices.Clone(defaultRequiredLocales)
	}
	c.Locales = cleanLocales(c.Locales)
	if len(c.Locales) == 0 {
		c.Locales = slices.Clone(defaultLocales)
	}
	// Required locales are always selectable.
	for i := len(c.RequiredLocales) - 1; i >= 0; i-- {
		if !slices.Contains(c.Locales, c.RequiredLocales[i]) {
			c.Locales = slices.Insert(c.Locales, 0, c.RequiredLocales[i])
		}
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log_level %q (want one of %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	c.LogFile = strings.TrimSpace(c.LogFile)
	if c.LogFile != "" {
		c.LogFile = mustExpand(c.LogFile)
	}
	return nil
}

func cleanLocales(in []string) []string {
	out := make([]string, 0, len(in))
	for _, code := range in {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || slices.Contains(out, code) {
			continue
		}
		out = append(out, code)
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
