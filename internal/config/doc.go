// Package config provides configuration management for the statusq
// application. It handles environment variables, command-line flag
// overrides, and validation of all configuration parameters.
//
// # Configuration Loading
//
// Configuration is resolved in two layers: environment variables with the
// STATUSQ_ prefix provide the baseline, and command-line flags override
// individual values. Load returns a validated Config; an invalid
// combination fails fast before any work starts.
//
// # Endpoint Resolution
//
// The status endpoint is configured as three parts (host, port, path) and
// combined by Config.URL into a single URL string, e.g.
// "http://localhost:8080/status".
package config
