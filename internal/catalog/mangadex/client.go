// Package mangadex searches the MangaDex REST API.
package mangadex

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"readmark/internal/catalog"
	"readmark/internal/content"
	"readmark/internal/services"
)

// DefaultCoverBaseURL serves cover art files referenced by manga records.
const DefaultCoverBaseURL = "https://uploads.mangadex.org"

type manga struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Title     map[string]string   `json:"title"`
		AltTitles []map[string]string `json:"altTitles"`
	} `json:"attributes"`
	Relationships []struct {
		ID         string `json:"id"`
		Type       string `json:"type"`
		Attributes *struct {
			FileName string `json:"fileName"`
		} `json:"attributes"`
	} `json:"relationships"`
}

type listResponse struct {
	Result string  `json:"result"`
	Data   []manga `json:"data"`
}

type entityResponse struct {
	Result string `json:"result"`
	Data   *manga `json:"data"`
}

// Client queries MangaDex.
type Client struct {
	baseURL   string
	transport catalog.Transport
}

var _ catalog.Source = (*Client)(nil)

// New creates a MangaDex client for baseURL.
func New(baseURL string, opts ...catalog.Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("mangadex base url required")
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: catalog.NewTransport(content.CatalogMangaDex, DefaultCoverBaseURL, opts...),
	}, nil
}

func (c *Client) Name() content.CatalogName { return content.CatalogMangaDex }

// Search lists manga whose titles match query. MangaDex only carries comics,
// so category does not change the request.
func (c *Client) Search(ctx context.Context, query string, _ content.Category) ([]catalog.Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, services.Wrap(services.ErrValidation, "mangadex", "search", "query must not be empty", nil)
	}
	params := url.Values{}
	params.Set("title", query)
	params.Set("limit", strconv.Itoa(c.transport.Limit()))
	params.Add("includes[]", "cover_art")
	params.Set("order[relevance]", "desc")

	var payload listResponse
	if err := c.transport.GetJSON(ctx, "search", c.baseURL+"/manga?"+params.Encode(), nil, &payload); err != nil {
		return nil, err
	}
	if payload.Result != "" && payload.Result != "ok" {
		return nil, services.Wrap(services.ErrUpstream, "mangadex", "search", "result "+payload.Result, nil)
	}
	entries := make([]catalog.Entry, 0, len(payload.Data))
	for _, m := range payload.Data {
		entries = append(entries, c.entry(m))
	}
	return entries, nil
}

// Lookup fetches one manga by its UUID.
func (c *Client) Lookup(ctx context.Context, id string, _ content.Category) (*catalog.Entry, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "mangadex", "lookup", "id must be a UUID", err)
	}
	id = parsed.String()
	params := url.Values{}
	params.Add("includes[]", "cover_art")
	endpoint := c.baseURL + "/manga/" + id + "?" + params.Encode()

	var payload entityResponse
	if err := c.transport.GetJSON(ctx, "lookup", endpoint, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, services.Wrap(services.ErrNotFound, "mangadex", "lookup", "manga "+id, nil)
	}
	entry := c.entry(*payload.Data)
	return &entry, nil
}

func (c *Client) entry(m manga) catalog.Entry {
	titles := catalog.AppendTitles(nil, localized(m.Attributes.Title)...)
	for _, alt := range m.Attributes.AltTitles {
		titles = catalog.AppendTitles(titles, localized(alt)...)
	}
	entry := catalog.Entry{ID: m.ID, Titles: titles}
	for _, rel := range m.Relationships {
		if rel.Type != "cover_art" || rel.Attributes == nil || rel.Attributes.FileName == "" {
			continue
		}
		entry.CoverURL = c.transport.CoverBaseURL() + "/covers/" + m.ID + "/" + rel.Attributes.FileName
		break
	}
	return entry
}

// localized orders a language map English first, then romanized Japanese,
// then the remaining languages alphabetically so results are stable.
func localized(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := langRank(keys[i]), langRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, values[k])
	}
	return out
}

func langRank(lang string) int {
	switch lang {
	case "en":
		return 0
	case "ja-ro", "ko-ro", "zh-ro":
		return 1
	default:
		return 2
	}
}
