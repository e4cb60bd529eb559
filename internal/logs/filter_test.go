package logs_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"readmark/internal/logging"
	"readmark/internal/logs"
	"readmark/internal/services"
)

func TestParseLineRoundTripsLoggerOutput(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := logging.New(logging.Options{Level: "info", Format: format, Writer: &buf})
			if err != nil {
				t.Fatalf("logging.New: %v", err)
			}
			ctx := services.WithRequestID(context.Background(), "req-42")
			logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "resolver"))
			logger.Warn("catalog search failed", logging.String("catalog", "kitsu"))

			line := strings.TrimSpace(buf.String())
			entry, ok := logs.ParseLine(line)
			if !ok {
				t.Fatalf("could not parse %q", line)
			}
			if entry.Level != slog.LevelWarn || entry.Component != "resolver" || entry.CorrelationID != "req-42" {
				t.Fatalf("unexpected entry %+v from %q", entry, line)
			}
		})
	}
}

func TestFilterMatch(t *testing.T) {
	line := "2026-10-19 10:00:00 INFO resolver: metadata resolved correlation_id=abc"
	tests := []struct {
		name   string
		filter logs.Filter
		want   bool
	}{
		{"empty", logs.Filter{}, true},
		{"correlation", logs.Filter{CorrelationID: "abc"}, true},
		{"other correlation", logs.Filter{CorrelationID: "xyz"}, false},
		{"component", logs.Filter{Component: "Resolver"}, true},
		{"other component", logs.Filter{Component: "identifier"}, false},
		{"level below", logs.Filter{MinLevel: slog.LevelInfo}, true},
		{"level above", logs.Filter{MinLevel: slog.LevelWarn}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(line); got != tt.want {
				t.Fatalf("Match = %v, want %v", got, tt.want)
			}
		})
	}

	if (logs.Filter{Component: "resolver"}).Match("not a log line") {
		t.Fatal("unparseable lines must not match a non-empty filter")
	}
}
