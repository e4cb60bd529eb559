// Package openlibrary searches the Open Library bibliographic catalog.
package openlibrary

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"readmark/internal/catalog"
	"readmark/internal/content"
	"readmark/internal/services"
)

// DefaultCoverBaseURL serves cover images by cover ID.
const DefaultCoverBaseURL = "https://covers.openlibrary.org"

const searchFields = "key,title,subtitle,alternative_title,cover_i"

type doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	AlternativeTitle []string `json:"alternative_title"`
	CoverID          int      `json:"cover_i"`
}

type searchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []doc `json:"docs"`
}

type work struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Covers   []int  `json:"covers"`
}

// Client queries Open Library.
type Client struct {
	baseURL   string
	transport catalog.Transport
}

var _ catalog.Source = (*Client)(nil)

// New creates an Open Library client for baseURL.
func New(baseURL string, opts ...catalog.Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("openlibrary base url required")
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: catalog.NewTransport(content.CatalogOpenLibrary, DefaultCoverBaseURL, opts...),
	}, nil
}

func (c *Client) Name() content.CatalogName { return content.CatalogOpenLibrary }

// Search looks works up by title. Open Library has no category notion.
func (c *Client) Search(ctx context.Context, query string, _ content.Category) ([]catalog.Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, services.Wrap(services.ErrValidation, "openlibrary", "search", "query must not be empty", nil)
	}
	params := url.Values{}
	params.Set("title", query)
	params.Set("limit", strconv.Itoa(c.transport.Limit()))
	params.Set("fields", searchFields)

	var payload searchResponse
	if err := c.transport.GetJSON(ctx, "search", c.baseURL+"/search.json?"+params.Encode(), nil, &payload); err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(payload.Docs))
	for _, d := range payload.Docs {
		titles := catalog.AppendTitles(nil, d.Title)
		if d.Subtitle != "" {
			titles = catalog.AppendTitles(titles, d.Title+": "+d.Subtitle)
		}
		titles = catalog.AppendTitles(titles, d.AlternativeTitle...)
		entries = append(entries, catalog.Entry{
			ID:       workID(d.Key),
			Titles:   titles,
			CoverURL: c.coverURL(d.CoverID),
		})
	}
	return entries, nil
}

// Lookup fetches one work by its OLID (for example OL45804W).
func (c *Client) Lookup(ctx context.Context, id string, _ content.Category) (*catalog.Entry, error) {
	id = workID(strings.TrimSpace(id))
	if id == "" || strings.ContainsAny(id, "/?#") {
		return nil, services.Wrap(services.ErrValidation, "openlibrary", "lookup", "invalid work id", nil)
	}
	var payload work
	if err := c.transport.GetJSON(ctx, "lookup", c.baseURL+"/works/"+url.PathEscape(id)+".json", nil, &payload); err != nil {
		return nil, err
	}
	if payload.Title == "" {
		return nil, services.Wrap(services.ErrNotFound, "openlibrary", "lookup", "work "+id, nil)
	}
	titles := catalog.AppendTitles(nil, payload.Title)
	if payload.Subtitle != "" {
		titles = catalog.AppendTitles(titles, payload.Title+": "+payload.Subtitle)
	}
	entry := catalog.Entry{ID: id, Titles: titles}
	for _, cover := range payload.Covers {
		if cover > 0 {
			entry.CoverURL = c.coverURL(cover)
			break
		}
	}
	return &entry, nil
}

func (c *Client) coverURL(coverID int) string {
	if coverID <= 0 {
		return ""
	}
	return c.transport.CoverBaseURL() + "/b/id/" + strconv.Itoa(coverID) + "-L.jpg"
}

func workID(key string) string {
	return strings.TrimPrefix(key, "/works/")
}
