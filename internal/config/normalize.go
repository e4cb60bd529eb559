package config

import (
	"os"
	"strings"
)

func (c *Config) normalize() {
	c.normalizeLogging()
	c.normalizeMatching()
	c.normalizeCatalogs()
	c.normalizeFetch()
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if value, ok := os.LookupEnv("READMARK_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		if expanded, err := ExpandPath(c.Logging.File); err == nil {
			c.Logging.File = expanded
		}
	}
}

func (c *Config) normalizeMatching() {
	if c.Matching.MaxCandidates <= 0 {
		c.Matching.MaxCandidates = defaultMaxCandidates
	}
	if c.Matching.MaxCandidates > maxCandidatesCeiling {
		c.Matching.MaxCandidates = maxCandidatesCeiling
	}
}

func (c *Config) normalizeCatalogs() {
	c.Catalogs.UserAgent = strings.TrimSpace(c.Catalogs.UserAgent)
	if value, ok := os.LookupEnv("READMARK_USER_AGENT"); ok && strings.TrimSpace(value) != "" {
		c.Catalogs.UserAgent = strings.TrimSpace(value)
	}
	if c.Catalogs.UserAgent == "" {
		c.Catalogs.UserAgent = defaultUserAgent
	}
	if c.Catalogs.RequestTimeout <= 0 {
		c.Catalogs.RequestTimeout = defaultCatalogWait
	}
	normalizeCatalog(&c.Catalogs.AniList, defaultAniListBaseURL, "")
	normalizeCatalog(&c.Catalogs.MangaDex, defaultMangaDexBaseURL, defaultMangaDexCoverBaseURL)
	normalizeCatalog(&c.Catalogs.Jikan, defaultJikanBaseURL, "")
	normalizeCatalog(&c.Catalogs.Kitsu, defaultKitsuBaseURL, "")
	normalizeCatalog(&c.Catalogs.OpenLibrary, defaultOpenLibraryBaseURL, defaultOpenLibraryCoverURL)
}

func normalizeCatalog(cat *Catalog, baseURL, coverURL string) {
	cat.BaseURL = strings.TrimRight(strings.TrimSpace(cat.BaseURL), "/")
	if cat.BaseURL == "" {
		cat.BaseURL = baseURL
	}
	cat.CoverBaseURL = strings.TrimRight(strings.TrimSpace(cat.CoverBaseURL), "/")
	if cat.CoverBaseURL == "" {
		cat.CoverBaseURL = coverURL
	}
}

func (c *Config) normalizeFetch() {
	if c.Fetch.RequestTimeout <= 0 {
		c.Fetch.RequestTimeout = defaultFetchTimeout
	}
	if c.Fetch.MaxBodyBytes <= 0 {
		c.Fetch.MaxBodyBytes = defaultMaxBodyBytes
	}
	if c.Fetch.MaxTextChars <= 0 {
		c.Fetch.MaxTextChars = defaultMaxTextChars
	}
}
