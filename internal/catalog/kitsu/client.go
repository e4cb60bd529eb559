// Package kitsu searches the Kitsu JSON:API catalog.
package kitsu

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"readmark/internal/catalog"
	"readmark/internal/content"
	"readmark/internal/services"
)

const mediaType = "application/vnd.api+json"

// maxPageLimit is the largest page[limit] Kitsu accepts.
const maxPageLimit = 20

type resource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		CanonicalTitle    string            `json:"canonicalTitle"`
		Titles            map[string]string `json:"titles"`
		AbbreviatedTitles []string          `json:"abbreviatedTitles"`
		PosterImage       *struct {
			Original string `json:"original"`
			Large    string `json:"large"`
			Medium   string `json:"medium"`
		} `json:"posterImage"`
	} `json:"attributes"`
}

type listResponse struct {
	Data []resource `json:"data"`
}

type entityResponse struct {
	Data *resource `json:"data"`
}

// Client queries Kitsu.
type Client struct {
	baseURL   string
	transport catalog.Transport
}

var _ catalog.Source = (*Client)(nil)

// New creates a Kitsu client for baseURL (ending in /api/edge).
func New(baseURL string, opts ...catalog.Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("kitsu base url required")
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: catalog.NewTransport(content.CatalogKitsu, "", opts...),
	}, nil
}

func (c *Client) Name() content.CatalogName { return content.CatalogKitsu }

// Search filters the anime or manga collection by free text.
func (c *Client) Search(ctx context.Context, query string, category content.Category) ([]catalog.Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, services.Wrap(services.ErrValidation, "kitsu", "search", "query must not be empty", nil)
	}
	limit := min(c.transport.Limit(), maxPageLimit)
	params := url.Values{}
	params.Set("filter[text]", query)
	params.Set("page[limit]", strconv.Itoa(limit))

	var payload listResponse
	endpoint := c.baseURL + "/" + collection(category) + "?" + params.Encode()
	if err := c.transport.GetJSON(ctx, "search", endpoint, header(), &payload); err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(payload.Data))
	for _, r := range payload.Data {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// Lookup fetches one resource by Kitsu ID.
func (c *Client) Lookup(ctx context.Context, id string, category content.Category) (*catalog.Entry, error) {
	id = strings.TrimSpace(id)
	if _, err := strconv.Atoi(id); err != nil {
		return nil, services.Wrap(services.ErrValidation, "kitsu", "lookup", "id must be numeric", err)
	}
	var payload entityResponse
	endpoint := c.baseURL + "/" + collection(category) + "/" + id
	if err := c.transport.GetJSON(ctx, "lookup", endpoint, header(), &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, services.Wrap(services.ErrNotFound, "kitsu", "lookup", collection(category)+" "+id, nil)
	}
	entry := payload.Data.entry()
	return &entry, nil
}

func header() http.Header {
	h := http.Header{}
	h.Set("Accept", mediaType)
	return h
}

func collection(category content.Category) string {
	if category.Episodic() {
		return "anime"
	}
	return "manga"
}

func (r resource) entry() catalog.Entry {
	attrs := r.Attributes
	titles := catalog.AppendTitles(nil, attrs.Titles["en"], attrs.CanonicalTitle, attrs.Titles["en_jp"])
	keys := make([]string, 0, len(attrs.Titles))
	for k := range attrs.Titles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		titles = catalog.AppendTitles(titles, attrs.Titles[k])
	}
	titles = catalog.AppendTitles(titles, attrs.AbbreviatedTitles...)

	entry := catalog.Entry{ID: r.ID, Titles: titles}
	if p := attrs.PosterImage; p != nil {
		switch {
		case p.Large != "":
			entry.CoverURL = p.Large
		case p.Original != "":
			entry.CoverURL = p.Original
		default:
			entry.CoverURL = p.Medium
		}
	}
	return entry
}
