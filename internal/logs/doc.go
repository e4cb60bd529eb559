// Package logs reads back the log file written by the CLI.
//
// Tail returns the last N lines (or everything after an offset) with bounded
// memory, and can wait for new lines in follow mode. Filter narrows lines to
// one correlation id, component or minimum level, so the records of a single
// resolution cascade can be pulled out of a busy file. Both the console and
// JSON log formats are understood.
package logs
