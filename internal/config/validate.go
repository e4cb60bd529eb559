package config

import (
	"errors"
	"fmt"
	"net/url"

	"readmark/internal/logging"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateCatalogs(); err != nil {
		return err
	}
	return c.validateFetch()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	if err := ensureUnit(map[string]float64{
		"matching.accept_threshold":       m.AcceptThreshold,
		"matching.early_accept_threshold": m.EarlyAcceptThreshold,
		"matching.same_work_threshold":    m.SameWorkThreshold,
	}); err != nil {
		return err
	}
	if m.EarlyAcceptThreshold < m.AcceptThreshold {
		return errors.New("matching.early_accept_threshold must be >= matching.accept_threshold")
	}
	if m.MaxCandidates <= 0 {
		return errors.New("matching.max_candidates must be positive")
	}
	return nil
}

func (c *Config) validateCatalogs() error {
	if c.Catalogs.RequestTimeout <= 0 {
		return errors.New("catalogs.request_timeout must be positive (seconds)")
	}
	for name, cat := range map[string]Catalog{
		"anilist":     c.Catalogs.AniList,
		"mangadex":    c.Catalogs.MangaDex,
		"jikan":       c.Catalogs.Jikan,
		"kitsu":       c.Catalogs.Kitsu,
		"openlibrary": c.Catalogs.OpenLibrary,
	} {
		if err := validateEndpoint("catalogs."+name+".base_url", cat.BaseURL); err != nil {
			return err
		}
		if cat.CoverBaseURL == "" {
			continue
		}
		if err := validateEndpoint("catalogs."+name+".cover_base_url", cat.CoverBaseURL); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateFetch() error {
	if c.Fetch.RequestTimeout <= 0 {
		return errors.New("fetch.request_timeout must be positive (seconds)")
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		return errors.New("fetch.max_body_bytes must be positive")
	}
	if c.Fetch.MaxTextChars <= 0 {
		return errors.New("fetch.max_text_chars must be positive")
	}
	return nil
}

func validateEndpoint(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must be an http(s) URL, got %q", key, raw)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s is missing a host", key)
	}
	return nil
}

func ensureUnit(values map[string]float64) error {
	for key, value := range values {
		if value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	}
	return nil
}
