// Package config loads roster's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/roster/config.toml
//  3. If the file does not exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Fields
//
//	api_url        base URL of the character API (default http://127.0.0.1:3001)
//	data_file      local db.json; when set the API is not contacted
//	log_path       log file (default ~/.local/state/roster/roster.log)
//	log_level      zerolog level name (default info)
//	fetch_timeout  per-request timeout in seconds (default 5)
//
// Paths starting with ~ are expanded to the user's home directory and made
// absolute. Command line flags are layered on top with Config.WithOverrides;
// an explicit --api wins over a data_file from the config.
//
// # Error Handling
//
// A missing file is not an error. A file that cannot be opened or parsed is,
// and app.Run treats it as fatal.
package config
