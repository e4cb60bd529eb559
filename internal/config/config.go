package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	File   string `toml:"file"`
}

// Matching holds the similarity thresholds used when scoring catalog results.
type Matching struct {
	AcceptThreshold      float64 `toml:"accept_threshold"`
	EarlyAcceptThreshold float64 `toml:"early_accept_threshold"`
	SameWorkThreshold    float64 `toml:"same_work_threshold"`
	MaxCandidates        int     `toml:"max_candidates"`
}

// Catalog describes one external metadata catalog endpoint.
type Catalog struct {
	Enabled      bool   `toml:"enabled"`
	BaseURL      string `toml:"base_url"`
	CoverBaseURL string `toml:"cover_base_url,omitempty"`
}

// Catalogs groups the shared HTTP settings and every catalog endpoint.
type Catalogs struct {
	RequestTimeout int     `toml:"request_timeout"`
	UserAgent      string  `toml:"user_agent"`
	AniList        Catalog `toml:"anilist"`
	MangaDex       Catalog `toml:"mangadex"`
	Jikan          Catalog `toml:"jikan"`
	Kitsu          Catalog `toml:"kitsu"`
	OpenLibrary    Catalog `toml:"openlibrary"`
}

// Fetch bounds page downloads performed by identify --fetch.
type Fetch struct {
	RequestTimeout int   `toml:"request_timeout"`
	MaxBodyBytes   int64 `toml:"max_body_bytes"`
	MaxTextChars   int   `toml:"max_text_chars"`
}

// Config encapsulates all configuration values for readmark.
//
// Configuration sections by subsystem:
//   - Logging: log format, level, and optional file copy
//   - Matching: similarity thresholds for the metadata cascade
//   - Catalogs: external catalog endpoints and HTTP settings
//   - Fetch: page download limits
type Config struct {
	Logging  Logging  `toml:"logging"`
	Matching Matching `toml:"matching"`
	Catalogs Catalogs `toml:"catalogs"`
	Fetch    Fetch    `toml:"fetch"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := ExpandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// ExpandPath resolves a leading ~ and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Timeout returns the per-request timeout applied to catalog calls.
func (c Catalogs) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// ByName returns the endpoint settings of a catalog by its lowercase name.
func (c Catalogs) ByName(name string) (Catalog, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "anilist":
		return c.AniList, true
	case "mangadex":
		return c.MangaDex, true
	case "jikan":
		return c.Jikan, true
	case "kitsu":
		return c.Kitsu, true
	case "openlibrary":
		return c.OpenLibrary, true
	default:
		return Catalog{}, false
	}
}

// Timeout returns the page download timeout.
func (f Fetch) Timeout() time.Duration {
	return time.Duration(f.RequestTimeout) * time.Second
}
