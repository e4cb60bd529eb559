package jikan_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"readmark/internal/catalog"
	"readmark/internal/catalog/jikan"
	"readmark/internal/content"
	"readmark/internal/services"
)

func TestSearchUsesCategoryIndex(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Query().Get("q") != "Frieren" || r.URL.Query().Get("limit") != "3" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"data":[{"mal_id":52991,"title":"Sousou no Frieren","title_english":"Frieren: Beyond Journey's End",
			"title_japanese":"葬送のフリーレン","title_synonyms":["Frieren at the Funeral"],
			"titles":[{"type":"Default","title":"Sousou no Frieren"},{"type":"German","title":"Frieren – Nach dem Ende der Reise"}],
			"images":{"jpg":{"image_url":"https://cdn.myanimelist.net/s.jpg","large_image_url":"https://cdn.myanimelist.net/l.jpg"}}}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := jikan.New(server.URL, catalog.WithLimit(3))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	entries, err := client.Search(context.Background(), "Frieren", content.CategoryAnime)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "Frieren", content.CategoryManga); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if strings.Join(paths, ",") != "/anime,/manga" {
		t.Fatalf("unexpected paths %v", paths)
	}

	got := entries[0]
	if got.ID != "52991" {
		t.Fatalf("unexpected id %q", got.ID)
	}
	want := []string{
		"Frieren: Beyond Journey's End",
		"Sousou no Frieren",
		"Frieren – Nach dem Ende der Reise",
		"Frieren at the Funeral",
		"葬送のフリーレン",
	}
	if strings.Join(got.Titles, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected titles %q", got.Titles)
	}
	if got.CoverURL != "https://cdn.myanimelist.net/l.jpg" {
		t.Fatalf("unexpected cover %q", got.CoverURL)
	}
}

func TestSearchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client, _ := jikan.New(server.URL)
	if _, err := client.Search(context.Background(), "x", content.CategoryAnime); !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manga/13" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"mal_id":13,"title":"One Piece","images":{"webp":{"image_url":"https://cdn/op.webp"}}}}`))
	}))
	t.Cleanup(server.Close)

	client, _ := jikan.New(server.URL)
	entry, err := client.Lookup(context.Background(), "13", content.CategoryManga)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if entry.Title() != "One Piece" || entry.CoverURL != "https://cdn/op.webp" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if _, err := client.Lookup(context.Background(), "13", content.CategoryAnime); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found on anime index, got %v", err)
	}
	if _, err := client.Lookup(context.Background(), "-1", content.CategoryAnime); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
