package mangadex_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"readmark/internal/catalog"
	"readmark/internal/catalog/mangadex"
	"readmark/internal/content"
	"readmark/internal/services"
)

const searchBody = `{"result":"ok","data":[{"id":"a1b2","type":"manga",
	"attributes":{"title":{"en":"Solo Leveling"},"altTitles":[{"ko":"나 혼자만 레벨업"},{"ko-ro":"Na Honjaman Level Up"},{"en":"solo leveling"}]},
	"relationships":[{"id":"auth","type":"author"},{"id":"c1","type":"cover_art","attributes":{"fileName":"cover.jpg"}}]}]}`

func TestSearchBuildsQueryAndCover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manga" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("title") != "Solo Leveling" || q.Get("limit") != "10" || q.Get("includes[]") != "cover_art" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(searchBody))
	}))
	t.Cleanup(server.Close)

	client, err := mangadex.New(server.URL+"/", catalog.WithCoverBaseURL("https://covers.test/"))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	entries, err := client.Search(context.Background(), "Solo Leveling", content.CategoryWebcomic)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	got := entries[0]
	want := []string{"Solo Leveling", "나 혼자만 레벨업", "Na Honjaman Level Up"}
	if strings.Join(got.Titles, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected titles %q", got.Titles)
	}
	if got.CoverURL != "https://covers.test/covers/a1b2/cover.jpg" {
		t.Fatalf("unexpected cover %q", got.CoverURL)
	}
}

func TestSearchDefaultsCoverHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchBody))
	}))
	t.Cleanup(server.Close)

	client, _ := mangadex.New(server.URL)
	entries, err := client.Search(context.Background(), "Solo Leveling", content.CategoryManga)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if !strings.HasPrefix(entries[0].CoverURL, mangadex.DefaultCoverBaseURL+"/covers/") {
		t.Fatalf("unexpected cover %q", entries[0].CoverURL)
	}
}

func TestSearchErrorResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "boom") {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"result":"error","errors":[]}`))
	}))
	t.Cleanup(server.Close)

	client, _ := mangadex.New(server.URL)
	if _, err := client.Search(context.Background(), "x", content.CategoryManga); !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected upstream error for error result, got %v", err)
	}
	if _, err := client.Search(context.Background(), "boom", content.CategoryManga); !errors.Is(err, services.ErrUpstream) {
		t.Fatalf("expected upstream error for 502, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	const id = "32d76d19-8a05-4db0-9fc2-e0b0648fe9d0"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manga/"+id {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"result":"ok","data":{"id":"` + id + `","attributes":{"title":{"en":"Solo Leveling"}},"relationships":[]}}`))
	}))
	t.Cleanup(server.Close)

	client, _ := mangadex.New(server.URL)
	entry, err := client.Lookup(context.Background(), " "+strings.ToUpper(id)+" ", content.CategoryManga)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if entry.ID != id || entry.Title() != "Solo Leveling" || entry.CoverURL != "" {
		t.Fatalf("unexpected entry %+v", entry)
	}
	missing := "00000000-0000-4000-8000-000000000000"
	if _, err := client.Lookup(context.Background(), missing, content.CategoryManga); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := client.Lookup(context.Background(), "a1b2", content.CategoryManga); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for non-UUID id, got %v", err)
	}
}
