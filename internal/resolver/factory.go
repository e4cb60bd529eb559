package resolver

import (
	"fmt"
	"log/slog"

	"readmark/internal/catalog"
	"readmark/internal/catalog/anilist"
	"readmark/internal/catalog/jikan"
	"readmark/internal/catalog/kitsu"
	"readmark/internal/catalog/mangadex"
	"readmark/internal/catalog/openlibrary"
	"readmark/internal/config"
	"readmark/internal/content"
)

// FromConfig builds a resolver over every enabled catalog in cfg.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*Resolver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("resolver: config is nil")
	}
	sources, err := Sources(cfg.Catalogs, cfg.Matching.MaxCandidates)
	if err != nil {
		return nil, err
	}
	return New(sources, WithLogger(logger), WithMatching(cfg.Matching)), nil
}

// Sources constructs a client for each enabled catalog.
func Sources(cfg config.Catalogs, limit int) ([]catalog.Source, error) {
	var sources []catalog.Source
	for _, name := range content.Catalogs() {
		entry, ok := cfg.ByName(name.String())
		if !ok || !entry.Enabled {
			continue
		}
		opts := []catalog.Option{
			catalog.WithTimeout(cfg.Timeout()),
			catalog.WithUserAgent(cfg.UserAgent),
			catalog.WithLimit(limit),
			catalog.WithCoverBaseURL(entry.CoverBaseURL),
		}
		src, err := newSource(name, entry.BaseURL, opts)
		if err != nil {
			return nil, fmt.Errorf("build %s client: %w", name, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func newSource(name content.CatalogName, baseURL string, opts []catalog.Option) (catalog.Source, error) {
	switch name {
	case content.CatalogAniList:
		return anilist.New(baseURL, opts...)
	case content.CatalogMangaDex:
		return mangadex.New(baseURL, opts...)
	case content.CatalogJikan:
		return jikan.New(baseURL, opts...)
	case content.CatalogKitsu:
		return kitsu.New(baseURL, opts...)
	case content.CatalogOpenLibrary:
		return openlibrary.New(baseURL, opts...)
	default:
		return nil, fmt.Errorf("unknown catalog %q", name)
	}
}
