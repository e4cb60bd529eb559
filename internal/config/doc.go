// Package config loads, normalizes, and validates readmark configuration data.
//
// It supplies repository defaults, reads TOML files, and honours environment
// fallbacks such as READMARK_LOG_LEVEL and READMARK_USER_AGENT. The Config
// type centralizes matching thresholds, catalog endpoints, page fetch limits,
// and logging settings so the resolver and CLI discover them in one pass.
//
// Always obtain settings through this package so downstream code receives
// trimmed endpoints, canonical log formats, and clear validation errors.
package config
