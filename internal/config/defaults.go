package config

const (
	defaultConfigPath  = "~/.config/readmark/config.toml"
	projectConfigName  = "readmark.toml"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultUserAgent   = "readmark/dev"
	defaultCatalogWait = 10

	defaultAcceptThreshold      = 0.7
	defaultEarlyAcceptThreshold = 0.95
	defaultSameWorkThreshold    = 0.6
	defaultMaxCandidates        = 10

	defaultAniListBaseURL       = "https://graphql.anilist.co"
	defaultMangaDexBaseURL      = "https://api.mangadex.org"
	defaultMangaDexCoverBaseURL = "https://uploads.mangadex.org"
	defaultJikanBaseURL         = "https://api.jikan.moe/v4"
	defaultKitsuBaseURL         = "https://kitsu.io/api/edge"
	defaultOpenLibraryBaseURL   = "https://openlibrary.org"
	defaultOpenLibraryCoverURL  = "https://covers.openlibrary.org"

	defaultFetchTimeout  = 15
	defaultMaxBodyBytes  = 4 << 20
	defaultMaxTextChars  = 4000
	maxCandidatesCeiling = 50
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Matching: Matching{
			AcceptThreshold:      defaultAcceptThreshold,
			EarlyAcceptThreshold: defaultEarlyAcceptThreshold,
			SameWorkThreshold:    defaultSameWorkThreshold,
			MaxCandidates:        defaultMaxCandidates,
		},
		Catalogs: Catalogs{
			RequestTimeout: defaultCatalogWait,
			UserAgent:      defaultUserAgent,
			AniList:        Catalog{Enabled: true, BaseURL: defaultAniListBaseURL},
			MangaDex:       Catalog{Enabled: true, BaseURL: defaultMangaDexBaseURL, CoverBaseURL: defaultMangaDexCoverBaseURL},
			Jikan:          Catalog{Enabled: true, BaseURL: defaultJikanBaseURL},
			Kitsu:          Catalog{Enabled: true, BaseURL: defaultKitsuBaseURL},
			OpenLibrary:    Catalog{Enabled: true, BaseURL: defaultOpenLibraryBaseURL, CoverBaseURL: defaultOpenLibraryCoverURL},
		},
		Fetch: Fetch{
			RequestTimeout: defaultFetchTimeout,
			MaxBodyBytes:   defaultMaxBodyBytes,
			MaxTextChars:   defaultMaxTextChars,
		},
	}
}
