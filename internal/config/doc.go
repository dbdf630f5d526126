// Package config loads and validates the server configuration from
// environment variables, command-line flags, and an optional JSON file.
// The three sources are merged with first-non-zero-wins semantics
// (env > flags > file) and documented defaults are applied afterwards.
package config
