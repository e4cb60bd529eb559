package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"readmark/internal/catalog"
	"readmark/internal/config"
	"readmark/internal/content"
	"readmark/internal/logging"
	"readmark/internal/services"
	"readmark/internal/textutil"
)

const (
	DefaultAcceptThreshold      = 0.7
	DefaultEarlyAcceptThreshold = 0.95
	defaultThumbnailTimeout     = 5 * time.Second
)

// Resolver runs the per-category catalog cascade.
type Resolver struct {
	sources       map[content.CatalogName]catalog.Source
	logger        *slog.Logger
	accept        float64
	early         float64
	maxCandidates int
	httpClient    *http.Client
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for cascade decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMatching applies the configured thresholds and candidate cap.
func WithMatching(m config.Matching) Option {
	return func(r *Resolver) {
		if m.AcceptThreshold > 0 {
			r.accept = m.AcceptThreshold
		}
		if m.EarlyAcceptThreshold > 0 {
			r.early = m.EarlyAcceptThreshold
		}
		if m.MaxCandidates > 0 {
			r.maxCandidates = m.MaxCandidates
		}
	}
}

// WithHTTPClient sets the client used for thumbnail checks.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.httpClient = client
		}
	}
}

// New builds a resolver over sources. A later source with the same name
// replaces an earlier one.
func New(sources []catalog.Source, opts ...Option) *Resolver {
	r := &Resolver{
		sources:       make(map[content.CatalogName]catalog.Source, len(sources)),
		logger:        logging.NewNop(),
		accept:        DefaultAcceptThreshold,
		early:         DefaultEarlyAcceptThreshold,
		maxCandidates: catalog.DefaultLimit,
		httpClient:    &http.Client{Timeout: defaultThumbnailTimeout},
	}
	for _, src := range sources {
		if src != nil {
			r.sources[src.Name()] = src
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logging.NewComponentLogger(r.logger, "resolver")
	return r
}

// Source returns the registered catalog client for name.
func (r *Resolver) Source(name content.CatalogName) (catalog.Source, bool) {
	src, ok := r.sources[name]
	return src, ok
}

// Resolve looks title up across the category's catalogs and returns the first
// accepted match, or nil when every catalog misses or fails.
func (r *Resolver) Resolve(ctx context.Context, title string, category content.Category) *content.Candidate {
	query := textutil.Clean(title)
	if query == "" {
		return nil
	}
	if !category.Valid() {
		category = content.DefaultCategory
	}

	ctx, _ = services.EnsureRequestID(ctx)
	logger := logging.WithContext(ctx, r.logger).With(
		logging.Category(category),
		logging.String("query", query),
	)

	strategy := StrategyFor(category)
	for _, name := range strategy.Order() {
		if err := ctx.Err(); err != nil {
			logger.Debug("resolution cancelled", logging.Error(err))
			return nil
		}
		src, ok := r.sources[name]
		if !ok {
			logger.Debug("catalog not configured", logging.Catalog(name))
			continue
		}
		candidate, err := r.search(services.WithCatalog(ctx, name.String()), logger, src, query, category)
		if err != nil {
			if ctx.Err() != nil {
				logger.Debug("resolution cancelled", logging.Error(ctx.Err()))
				return nil
			}
			logging.WarnWithContext(logger, "catalog search failed", "catalog_search_failed",
				logging.Catalog(name),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, searchHint(err)),
				logging.String(logging.FieldImpact, "catalog skipped; trying next fallback"),
			)
			continue
		}
		if candidate != nil {
			logger.Info("metadata resolved", logging.Args(append(
				logging.DecisionAttrs("catalog_match", "accepted", "score above threshold"),
				logging.Candidate(candidate)...,
			)...)...)
			return candidate
		}
	}
	logger.Info("metadata unresolved", logging.Args(
		logging.DecisionAttrs("catalog_match", "none", "no catalog produced an accepted match")...)...)
	return nil
}

func (r *Resolver) search(ctx context.Context, logger *slog.Logger, src catalog.Source, query string, category content.Category) (*content.Candidate, error) {
	logger = logger.With(logging.Catalog(src.Name()))
	entries, err := src.Search(ctx, query, category)
	if err != nil {
		return nil, err
	}
	best, ok := bestMatch(logger, query, entries, r.maxCandidates, r.early)
	if !ok {
		logger.Debug("catalog returned no entries")
		return nil, nil
	}
	if best.score < r.accept {
		logger.Debug("best entry below threshold",
			logging.String("entry_id", best.entry.ID),
			logging.String("variant", best.variant),
			logging.Score("score", best.score),
			logging.Float64("threshold", r.accept))
		return nil, nil
	}
	return candidateFrom(src.Name(), best.entry, best.score), nil
}

// ResolveByID fetches one catalog record directly without scoring.
func (r *Resolver) ResolveByID(ctx context.Context, name content.CatalogName, id string, category content.Category) (*content.Candidate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, services.Wrap(services.ErrValidation, "resolver", "lookup", "id must not be empty", nil)
	}
	src, ok := r.sources[name]
	if !ok {
		return nil, services.Wrap(services.ErrConfiguration, "resolver", "lookup",
			fmt.Sprintf("catalog %q is not enabled", name), nil)
	}
	if !category.Valid() {
		category = content.DefaultCategory
	}

	ctx, _ = services.EnsureRequestID(ctx)
	ctx = services.WithCatalog(ctx, name.String())
	logger := logging.WithContext(ctx, r.logger).With(logging.String("id", id))
	entry, err := src.Lookup(ctx, id, category)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			logging.WarnWithContext(logger, "catalog lookup failed", "catalog_lookup_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "no metadata for this id"))
		}
		return nil, err
	}
	if entry == nil {
		return nil, services.Wrap(services.ErrNotFound, "resolver", "lookup", "catalog returned no record", nil)
	}
	logger.Debug("lookup succeeded", logging.String("candidate_title", entry.Title()))
	return candidateFrom(name, *entry, 0), nil
}

func candidateFrom(name content.CatalogName, entry catalog.Entry, score float64) *content.Candidate {
	return &content.Candidate{
		ID:           entry.ID,
		Title:        entry.Title(),
		ThumbnailURL: entry.CoverURL,
		Source:       name,
		Score:        score,
	}
}

func searchHint(err error) string {
	if services.Retryable(err) {
		return "catalog unavailable or slow; retry later"
	}
	return "check the catalog base_url and query"
}
