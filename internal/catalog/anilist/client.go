// Package anilist searches the AniList GraphQL API for anime and manga.
package anilist

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"readmark/internal/catalog"
	"readmark/internal/content"
	"readmark/internal/services"
)

const mediaFields = `id title { romaji english native userPreferred } synonyms coverImage { extraLarge large medium }`

const searchQuery = `query ($search: String, $type: MediaType, $perPage: Int) {
  Page(page: 1, perPage: $perPage) { media(search: $search, type: $type) { ` + mediaFields + ` } }
}`

const lookupQuery = `query ($id: Int, $type: MediaType) { Media(id: $id, type: $type) { ` + mediaFields + ` } }`

type media struct {
	ID    int `json:"id"`
	Title struct {
		Romaji        string `json:"romaji"`
		English       string `json:"english"`
		Native        string `json:"native"`
		UserPreferred string `json:"userPreferred"`
	} `json:"title"`
	Synonyms   []string `json:"synonyms"`
	CoverImage struct {
		ExtraLarge string `json:"extraLarge"`
		Large      string `json:"large"`
		Medium     string `json:"medium"`
	} `json:"coverImage"`
}

type graphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type searchResponse struct {
	Data struct {
		Page struct {
			Media []media `json:"media"`
		} `json:"Page"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type lookupResponse struct {
	Data struct {
		Media *media `json:"Media"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// Client queries AniList.
type Client struct {
	endpoint  string
	transport catalog.Transport
}

var _ catalog.Source = (*Client)(nil)

// New creates an AniList client posting to baseURL.
func New(baseURL string, opts ...catalog.Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("anilist base url required")
	}
	return &Client{
		endpoint:  strings.TrimRight(baseURL, "/"),
		transport: catalog.NewTransport(content.CatalogAniList, "", opts...),
	}, nil
}

func (c *Client) Name() content.CatalogName { return content.CatalogAniList }

// Search returns media whose titles match query. Anime pages search ANIME;
// every other category searches MANGA, which on AniList includes manhwa,
// webtoons, and light novels.
func (c *Client) Search(ctx context.Context, query string, category content.Category) ([]catalog.Entry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, services.Wrap(services.ErrValidation, "anilist", "search", "query must not be empty", nil)
	}
	body := request{Query: searchQuery, Variables: map[string]any{
		"search":  query,
		"type":    mediaType(category),
		"perPage": c.transport.Limit(),
	}}
	var payload searchResponse
	if err := c.transport.PostJSON(ctx, "search", c.endpoint, body, nil, &payload); err != nil {
		return nil, err
	}
	if len(payload.Errors) > 0 && len(payload.Data.Page.Media) == 0 {
		return nil, services.Wrap(services.ErrUpstream, "anilist", "search", payload.Errors[0].Message, nil)
	}
	entries := make([]catalog.Entry, 0, len(payload.Data.Page.Media))
	for _, m := range payload.Data.Page.Media {
		entries = append(entries, m.entry())
	}
	return entries, nil
}

// Lookup fetches one media record by its numeric AniList ID.
func (c *Client) Lookup(ctx context.Context, id string, category content.Category) (*catalog.Entry, error) {
	numeric, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || numeric <= 0 {
		return nil, services.Wrap(services.ErrValidation, "anilist", "lookup", "id must be a positive integer", err)
	}
	body := request{Query: lookupQuery, Variables: map[string]any{
		"id":   numeric,
		"type": mediaType(category),
	}}
	var payload lookupResponse
	if err := c.transport.PostJSON(ctx, "lookup", c.endpoint, body, nil, &payload); err != nil {
		return nil, err
	}
	if payload.Data.Media == nil {
		for _, e := range payload.Errors {
			if e.Status != 0 && e.Status != 404 {
				return nil, services.Wrap(services.ErrUpstream, "anilist", "lookup", e.Message, nil)
			}
		}
		return nil, services.Wrap(services.ErrNotFound, "anilist", "lookup", "media "+id, nil)
	}
	entry := payload.Data.Media.entry()
	return &entry, nil
}

func mediaType(category content.Category) string {
	if category.Episodic() {
		return "ANIME"
	}
	return "MANGA"
}

func (m media) entry() catalog.Entry {
	titles := catalog.AppendTitles(nil, m.Title.English, m.Title.Romaji, m.Title.UserPreferred, m.Title.Native)
	titles = catalog.AppendTitles(titles, m.Synonyms...)
	cover := m.CoverImage.ExtraLarge
	if cover == "" {
		cover = m.CoverImage.Large
	}
	if cover == "" {
		cover = m.CoverImage.Medium
	}
	return catalog.Entry{ID: strconv.Itoa(m.ID), Titles: titles, CoverURL: cover}
}
