package testsupport

import (
	"path/filepath"
	"testing"

	"readmark/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config with logs routed into a per-test temp
// directory. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.File = filepath.Join(base, "logs", "readmark.log")
	cfgVal.Catalogs.UserAgent = "readmark-test"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalogServer points every catalog endpoint, including cover hosts, at
// baseURL. Typically the URL of an httptest.Server.
func WithCatalogServer(baseURL string) ConfigOption {
	return func(b *configBuilder) {
		c := &b.cfg.Catalogs
		for _, entry := range []*config.Catalog{&c.AniList, &c.MangaDex, &c.Jikan, &c.Kitsu, &c.OpenLibrary} {
			entry.BaseURL = baseURL
			if entry.CoverBaseURL != "" {
				entry.CoverBaseURL = baseURL
			}
		}
	}
}

// WithDisabledCatalogs turns the named catalogs off.
func WithDisabledCatalogs(names ...string) ConfigOption {
	return func(b *configBuilder) {
		c := &b.cfg.Catalogs
		for _, name := range names {
			switch name {
			case "anilist":
				c.AniList.Enabled = false
			case "mangadex":
				c.MangaDex.Enabled = false
			case "jikan":
				c.Jikan.Enabled = false
			case "kitsu":
				c.Kitsu.Enabled = false
			case "openlibrary":
				c.OpenLibrary.Enabled = false
			default:
				b.t.Fatalf("unknown catalog %q", name)
			}
		}
	}
}

// WithMatching overrides the similarity thresholds.
func WithMatching(accept, early float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.AcceptThreshold = accept
		b.cfg.Matching.EarlyAcceptThreshold = early
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Logging.File))
}
