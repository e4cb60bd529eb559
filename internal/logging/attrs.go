package logging

import (
	"log/slog"
	"math"

	"readmark/internal/content"
)

// Attr aliases slog.Attr so callers only import this package.
type Attr = slog.Attr

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Float64(key string, value float64) Attr { return slog.Float64(key, value) }

// Error records err under the "error" key; a nil error is logged as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// Catalog tags a record with the external catalog it concerns.
func Catalog(name content.CatalogName) Attr {
	return slog.String(FieldCatalog, name.String())
}

// Category tags a record with a media category.
func Category(category content.Category) Attr {
	return slog.String(FieldCategory, category.String())
}

// Score logs a similarity rounded to three decimals.
func Score(key string, value float64) Attr {
	return slog.Float64(key, math.Round(value*1000)/1000)
}

// Candidate expands a resolved candidate into its identifying attributes.
func Candidate(c *content.Candidate) []Attr {
	if c == nil {
		return nil
	}
	return []Attr{
		Catalog(c.Source),
		slog.String("candidate_id", c.ID),
		slog.String("candidate_title", c.Title),
		Score("score", c.Score),
	}
}

// Args converts attrs to the variadic form slog.Logger methods take.
func Args(attrs ...Attr) []any {
	args := make([]any, len(attrs))
	for i, attr := range attrs {
		args[i] = attr
	}
	return args
}

// NewNop returns a logger that drops everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger scopes logger to component. A nil logger yields a no-op
// logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

func hasKey(attrs []Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// WarnWithContext logs a warning that always carries event_type, error_hint
// and impact so operators can filter and act on it. Values already present
// in attrs win over the defaults.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	defaults := [...]Attr{
		slog.String(FieldEventType, eventType),
		slog.String(FieldErrorHint, "rerun with --log-level debug for details"),
		slog.String(FieldImpact, "lookup continued without this result"),
	}
	for _, d := range defaults {
		if !hasKey(attrs, d.Key) {
			attrs = append(attrs, d)
		}
	}
	logger.Warn(msg, Args(attrs...)...)
}

// DecisionAttrs describes a branch the resolver or identifier took.
func DecisionAttrs(decisionType, result, reason string) []Attr {
	return []Attr{
		slog.String(FieldDecisionType, decisionType),
		slog.String("decision_result", result),
		slog.String("decision_reason", reason),
	}
}
