package catalog

import (
	"context"
	"strings"

	"readmark/internal/content"
)

// Entry is one record returned by a catalog, before scoring.
type Entry struct {
	ID string `json:"id"`
	// Titles holds every variant the catalog exposes; the first is the
	// catalog's preferred display title.
	Titles   []string `json:"titles"`
	CoverURL string   `json:"cover_url,omitempty"`
}

// Title returns the preferred display title, or "" when the entry has none.
func (e Entry) Title() string {
	if len(e.Titles) == 0 {
		return ""
	}
	return e.Titles[0]
}

// Source is an external metadata catalog.
type Source interface {
	Name() content.CatalogName
	Search(ctx context.Context, query string, category content.Category) ([]Entry, error)
	Lookup(ctx context.Context, id string, category content.Category) (*Entry, error)
}

// AppendTitles adds the non-empty values to dst, skipping case-insensitive
// duplicates already present.
func AppendTitles(dst []string, values ...string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		dup := false
		for _, existing := range dst {
			if strings.EqualFold(existing, v) {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}
