// Package config handles loading and parsing porthole configuration files.
//
// # Overview
//
// This package reads porthole's TOML configuration to discover the Harbor
// daemon's API endpoint and the reconciliation poll cadence. Everything else
// porthole needs is negotiated at runtime over the API itself.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/porthole/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/porthole/config.toml
//   - API endpoint: 127.0.0.1:8787
//   - Poll cadence: 15 seconds
//
// # TOML Format
//
// Example config.toml:
//
//	address = "127.0.0.1:8787"
//	poll_seconds = 15
//
// Both fields are optional. Tilde expansion is performed automatically on the
// config path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A missing
// config file is NOT an error - defaults are used instead, so porthole works
// out-of-the-box against a daemon on the default port.
//
// # Live Reload
//
// The application watches the resolved config file for changes (see
// internal/app). This package stays stateless: a reload is just another Load
// call. ResolvePath is exported so the watcher can locate the concrete file.
package config
