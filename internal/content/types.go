package content

import (
	"fmt"
	"strings"
)

// PageSignals are the raw inputs scraped from a page.
type PageSignals struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	BodyText string `json:"body_text,omitempty"`
}

// CatalogName identifies an external metadata provider.
type CatalogName string

const (
	CatalogAniList     CatalogName = "anilist"
	CatalogMangaDex    CatalogName = "mangadex"
	CatalogJikan       CatalogName = "jikan"
	CatalogKitsu       CatalogName = "kitsu"
	CatalogOpenLibrary CatalogName = "openlibrary"
)

// Catalogs lists every known provider.
func Catalogs() []CatalogName {
	return []CatalogName{CatalogAniList, CatalogMangaDex, CatalogJikan, CatalogKitsu, CatalogOpenLibrary}
}

// ParseCatalogName maps a user supplied name onto a CatalogName.
func ParseCatalogName(value string) (CatalogName, error) {
	name := CatalogName(strings.ToLower(strings.TrimSpace(value)))
	switch name {
	case "mal", "myanimelist":
		return CatalogJikan, nil
	case "ol":
		return CatalogOpenLibrary, nil
	}
	for _, known := range Catalogs() {
		if name == known {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown catalog %q", value)
}

func (n CatalogName) String() string {
	return string(n)
}

// Candidate is the metadata recovered from a successful catalog lookup.
type Candidate struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	Source       CatalogName `json:"source"`
	// Score is the similarity of the winning title variant; 0 for direct lookups.
	Score float64 `json:"score,omitempty"`
}
