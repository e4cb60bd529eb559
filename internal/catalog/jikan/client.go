// Package jikan searches MyAnimeList through the Jikan REST API.
package jikan

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

type imageSet struct {
	ImageURL      string `json:"image_url"`
	LargeImageURL string `json:"large_image_url"`
}

type record struct {
	MalID         int      `json:"mal_id"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english"`
	TitleJapanese string   `json:"title_japanese"`
	TitleSynonyms []string `json:"title_synonyms"`
	Titles        []struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	} `json:"titles"`
	Images struct {
		JPG  imageSet `json:"jpg"`
		WebP imageSet `json:"webp"`
	} `json:"images"`
}

type listResponse struct {
	Data []record `json:"data"`
}

type entityResponse struct {
	Data *record `json:"data"`
}

// Client queries the Jikan API.
type Client struct {
	baseURL   string
	transport catalog.Transport
}

var _ catalog.Source = (*Client)(nil)

// New creates a Jikan client for baseURL (including the /v4 prefix).
func New(baseURL string, opts ...catalog.Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("jikan base url required")
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		transport: catalog.NewTransport(content.CatalogJikan, "", opts...),
	}, nil
}

func (c *Client) Name() content.CatalogName { return content.CatalogJikan }

// Search queries the anime or manga index depending on category.
func (c *Client) Search(ctx context.Context, query string, category content.Category) ([]catalog.Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, services.Wrap(services.ErrValidation, "jikan", "search", "query must not be empty", nil)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(c.transport.Limit()))

	var payload listResponse
	if err := c.transport.GetJSON(ctx, "search", c.baseURL+"/"+kind(category)+"?"+params.Encode(), nil, &payload); err != nil {
		return nil, err
	}
	entries := make([]catalog.Entry, 0, len(payload.Data))
	for _, r := range payload.Data {
		entries = append(entries, r.entry())
	}
	return entries, nil
}

// Lookup fetches one record by MyAnimeList ID.
func (c *Client) Lookup(ctx context.Context, id string, category content.Category) (*catalog.Entry, error) {
	numeric, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || numeric <= 0 {
		return nil, services.Wrap(services.ErrValidation, "jikan", "lookup", "id must be a positive integer", err)
	}
	var payload entityResponse
	endpoint := c.baseURL + "/" + kind(category) + "/" + strconv.Itoa(numeric)
	if err := c.transport.GetJSON(ctx, "lookup", endpoint, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, services.Wrap(services.ErrNotFound, "jikan", "lookup", kind(category)+" "+id, nil)
	}
	entry := payload.Data.entry()
	return &entry, nil
}

func kind(category content.Category) string {
	if category.Episodic() {
		return "anime"
	}
	return "manga"
}

func (r record) entry() catalog.Entry {
	titles := catalog.AppendTitles(nil, r.TitleEnglish, r.Title)
	for _, t := range r.Titles {
		titles = catalog.AppendTitles(titles, t.Title)
	}
	titles = catalog.AppendTitles(titles, r.TitleSynonyms...)
	titles = catalog.AppendTitles(titles, r.TitleJapanese)

	cover := r.Images.JPG.LargeImageURL
	for _, candidate := range []string{r.Images.JPG.ImageURL, r.Images.WebP.LargeImageURL, r.Images.WebP.ImageURL} {
		if cover != "" {
			break
		}
		cover = candidate
	}
	return catalog.Entry{ID: strconv.Itoa(r.MalID), Titles: titles, CoverURL: cover}
}
