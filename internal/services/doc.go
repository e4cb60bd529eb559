// Package services defines shared utilities consumed by the resolver, the
// catalog clients, and the CLI.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and catalog names so
//     every log line of one resolution can be grouped.
//   - Structured error markers plus the Wrap helper that classify failures
//     (upstream catalog, validation, not found) for exit codes and logging.
//
// Use these helpers when wiring a new catalog client so failure handling stays
// uniform across sources.
package services
