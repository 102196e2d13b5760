// Package config loads locedit settings.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The TOML file at the given path, or ~/.config/locedit/config.toml
//  3. LOCEDIT_* environment variables, which win over the file
//
// A missing config file is not an error. LoadDotEnv can be called first to
// populate the environment from a .env file; variables already set in the
// process environment are left alone.
//
// # TOML Format
//
//	api_url = "https://example.com/v2/translations/en-us"
//	timeout_seconds = 10
//	locales = ["en-us", "zh-tw", "ja-jp"]
//	required_locales = ["en-us", "zh-tw"]
//	debounce_ms = 300
//	search_cache_size = 100
//	log_file = "~/.local/state/locedit/locedit.log"
//	log_level = "info"
//	fallback_to_sample = true
//
// Every field is optional. Environment names are the upper-cased field names
// with the LOCEDIT_ prefix (LOCEDIT_API_URL, LOCEDIT_LOCALES="en-us,ja-jp").
//
// # Normalization
//
// Strings are trimmed and locale codes lower-cased and de-duplicated.
// Required locales are always part of Locales. Non-positive timeout and
// cache size fall back to defaults; a debounce of 0 disables debouncing.
// log_file gets tilde expansion. An unknown log_level is an error.
//
// An empty api_url means no remote source: the editor starts from the
// built-in sample data.
package config
