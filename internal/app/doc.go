// Package app is the composition root of the locedit editor.
//
// # Overview
//
// Run wires configuration, logging, preferences, the state store, the search
// engine and the remote client together and hands them to the TUI. Nothing
// here holds business logic; the domain packages own that.
//
// # Startup
//
//  1. Load .env (optional), then ~/.config/locedit/config.toml with LOCEDIT_* overrides
//  2. Build the zap logger (file or no-op)
//  3. Read UI preferences from ~/.config/locedit/prefs.toml
//  4. Create the state.Store and search.Engine
//  5. Build the remote client when api_url is set
//  6. Start the TUI; the initial load runs as its first command
//
// # Initial load
//
// Loader.Bootstrap fetches the payload from the remote endpoint. When that
// fails, or no endpoint is configured, the embedded sample set is loaded
// instead and the fetch failure is only logged. A failed fallback is the one
// startup condition recorded as a store error.
//
//	Bootstrap()
//	  ├─> SetLoading(true), ClearError
//	  ├─> remote.FetchTranslations ──ok──> Load (SourceRemote)
//	  │        └── err ──> log warn
//	  ├─> sample.Load ──ok──> Load (SourceSample)
//	  │        └── err ──> SetError
//	  └─> SetLoading(false)
package app
