// Package config handles configuration management for imgreorder.
// It layers embedded TOML defaults, an optional user TOML file, and
// IMGREORDER_* environment variables. Only the command-line host reads
// configuration; the scanner and materializer take explicit arguments.
package config
