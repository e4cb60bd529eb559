// Package main hosts the readmark CLI entrypoint and command graph.
//
// Each command surfaces one stage of the identification pipeline (classify,
// progress, title, resolve, lookup, thumbnail) or the whole pipeline at once
// (identify). Configuration is resolved lazily so offline commands work
// without a config file, and logs go to stderr to keep stdout parseable.
package main
