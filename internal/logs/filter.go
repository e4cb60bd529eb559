package logs

import (
	"encoding/json"
	"log/slog"
	"strings"

	"readmark/internal/logging"
)

// Entry holds the fields of a log line that filters inspect.
type Entry struct {
	Level         slog.Level
	Component     string
	CorrelationID string
}

// Filter selects log lines. Zero-valued fields match everything.
type Filter struct {
	CorrelationID string
	Component     string
	// MinLevel drops lines below the level when set.
	MinLevel slog.Leveler
}

func (f Filter) empty() bool {
	return f.CorrelationID == "" && f.Component == "" && f.MinLevel == nil
}

// Match reports whether line passes the filter. Lines that cannot be parsed
// only match an empty filter.
func (f Filter) Match(line string) bool {
	if f.empty() {
		return true
	}
	entry, ok := ParseLine(line)
	if !ok {
		return false
	}
	if f.MinLevel != nil && entry.Level < f.MinLevel.Level() {
		return false
	}
	if f.Component != "" && !strings.EqualFold(entry.Component, f.Component) {
		return false
	}
	if f.CorrelationID != "" && entry.CorrelationID != f.CorrelationID {
		return false
	}
	return true
}

// ParseLine extracts level, component and correlation id from a console or
// JSON formatted line.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "{") {
		return parseJSONLine(line)
	}
	return parseConsoleLine(line)
}

func parseJSONLine(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	level, ok := parseLevel(stringField(raw, "level"))
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Level:         level,
		Component:     stringField(raw, logging.FieldComponent),
		CorrelationID: stringField(raw, logging.FieldCorrelationID),
	}, true
}

// parseConsoleLine reads "<date> <time> LEVEL component: message key=value...".
func parseConsoleLine(line string) (Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, false
	}
	level, ok := parseLevel(fields[2])
	if !ok {
		return Entry{}, false
	}
	entry := Entry{Level: level}
	if len(fields) > 3 && strings.HasSuffix(fields[3], ":") {
		entry.Component = strings.TrimSuffix(fields[3], ":")
	}
	prefix := logging.FieldCorrelationID + "="
	for _, f := range fields[3:] {
		if value, found := strings.CutPrefix(f, prefix); found {
			entry.CorrelationID = strings.Trim(value, `"`)
			break
		}
	}
	return entry, true
}

func parseLevel(value string) (slog.Level, bool) {
	switch strings.ToLower(value) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}
