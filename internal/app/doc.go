// Package app provides the orchestration layer for roster.
//
// # Overview
//
// This package wires together configuration, logging, the record source, the
// shared state store and the UI. It is the composition root where every
// dependency is built and connected.
//
// # Startup
//
//  1. Load ~/.config/roster/config.toml and apply --api / --data overrides
//  2. Open the zerolog file logger (the TUI owns the terminal)
//  3. Load prefs; a broken prefs file is logged and defaults are used
//  4. Build the source: a FileSource when data_file is set, else the HTTP client
//  5. Start the loader goroutine against a fresh state.Store
//  6. Run the TUI and block until the user quits or the context is cancelled
//
// # Loader
//
//	┌─────────────────────────────────────────┐
//	│ StartLoader() goroutine                 │
//	│  ├─> source.FetchCharacters()           │
//	│  ├─> store.Update()                     │
//	│  └─> on failure: sleep calculateBackoff │
//	└─────────────────────────────────────────┘
//
// Unlike a poller the loader stops after the first successful fetch. The
// collection is loaded once and never replaced; only the viewed flags change
// afterwards, and those live in the UI's view-state engine.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Log file cannot be opened or the log level is unknown
//   - The API URL cannot be parsed
//
// Recoverable errors (logged, retried with backoff):
//   - Connection refused, timeouts, HTTP error status
//   - Missing or malformed data file
package app
