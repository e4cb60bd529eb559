package identification

import (
	"context"
	"log/slog"

	"readmark/internal/content"
	"readmark/internal/extract"
	"readmark/internal/logging"
	"readmark/internal/services"
)

// MetadataResolver is the subset of the resolver used by the identifier.
type MetadataResolver interface {
	Resolve(ctx context.Context, title string, category content.Category) *content.Candidate
	ValidateThumbnail(ctx context.Context, imageURL string) string
}

// Options tunes a single identification.
type Options struct {
	// Resolve runs the catalog cascade for the extracted title.
	Resolve bool
	// Category overrides the classifier when set.
	Category content.Category
}

// Identifier runs the full identification pipeline.
type Identifier struct {
	resolver MetadataResolver
	logger   *slog.Logger
}

// NewIdentifier wires an identifier. resolver may be nil when metadata
// resolution is never requested.
func NewIdentifier(resolver MetadataResolver, logger *slog.Logger) *Identifier {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Identifier{
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "identifier"),
	}
}

// Identify extracts the page's title, category and progress and, when
// requested, attaches catalog metadata with a validated thumbnail.
func (i *Identifier) Identify(ctx context.Context, signals content.PageSignals, opts Options) Result {
	ctx, _ = services.EnsureRequestID(ctx)
	logger := logging.WithContext(ctx, i.logger).With(logging.String("url", signals.URL))

	var result Result
	if opts.Category.Valid() {
		result = identifyAs(signals, opts.Category)
		logger.Debug("category overridden", logging.Category(opts.Category))
	} else {
		result = Identify(signals)
	}
	logger.Info("page identified",
		logging.String("title", result.Title),
		logging.Category(result.Category),
		logging.String("progress", result.Progress.String()))

	if !opts.Resolve {
		return result
	}
	if i.resolver == nil {
		logging.WarnWithContext(logger, "metadata resolution requested without a resolver", "resolver_unavailable",
			logging.String(logging.FieldImpact, "result carries no catalog metadata"))
		return result
	}
	if result.Title == extract.Untitled {
		logger.Info("metadata resolution skipped", logging.Args(
			logging.DecisionAttrs("metadata_lookup", "skipped", "no usable title")...)...)
		return result
	}

	candidate := i.resolver.Resolve(ctx, result.Title, result.Category)
	if candidate == nil {
		return result
	}
	if candidate.ThumbnailURL != "" {
		if valid := i.resolver.ValidateThumbnail(ctx, candidate.ThumbnailURL); valid == "" {
			logger.Debug("thumbnail dropped", logging.String("thumbnail_url", candidate.ThumbnailURL))
			candidate.ThumbnailURL = ""
		}
	}
	result.Metadata = candidate
	return result
}
