package extract

import (
	"testing"

	"readmark/internal/content"
)

func TestProgressChapters(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		want  float64
	}{
		{"chapter slug", "https://site.com/manga/one-piece/chapter-42", "", 42},
		{"fractional chapter", "https://site.com/read/title/chapter-12.5", "", 12.5},
		{"ch dot", "https://site.com/one-piece/ch.7", "", 7},
		{"path flanked", "https://site.com/series/one-piece/123", "", 123},
		{"bracketed", "https://site.com/view?id=x", "One Piece [88]", 88},
		{"title fallback", "https://site.com/read?id=abc", "One Piece Chapter 1000", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.url, tt.title, content.CategoryManga)
			n, ok := got.Chapter()
			if !ok || n != tt.want {
				t.Fatalf("Progress(%q, %q) = %s, want chapter %v", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

func TestProgressEpisodes(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		title string
		want  int
	}{
		{"episode slug", "https://site.com/watch/show-episode-5", "", 5},
		{"ep prefix", "https://site.com/watch/frieren/ep-12", "", 12},
		{"season compound", "https://site.com/show/s01e05", "", 5},
		{"bare e", "https://site.com/show/e07", "", 7},
		{"floored", "https://site.com/watch/show-episode-12.5", "", 12},
		{"title", "https://site.com/player", "Frieren Episode 3", 3},
		{"path segment", "https://site.com/anime/frieren/12", "", 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.url, tt.title, content.CategoryAnime)
			n, ok := got.Episode()
			if !ok || n != tt.want {
				t.Fatalf("Progress(%q, %q) = %s, want episode %d", tt.url, tt.title, got, tt.want)
			}
		})
	}
}

func TestProgressMisses(t *testing.T) {
	tests := []struct {
		url   string
		title string
	}{
		{"", ""},
		{"::::", ""},
		{"https://site.com/title/98765", ""},
		{"https://mangadex.org/title/abc", "One Piece"},
		{"not a url at all", "ソードアート・オンライン"},
	}
	for _, tt := range tests {
		if got := Progress(tt.url, tt.title, content.CategoryManga); !got.IsZero() {
			t.Fatalf("Progress(%q, %q) = %s, want none", tt.url, tt.title, got)
		}
	}
}

func TestAnimeNeverCarriesChapter(t *testing.T) {
	urls := []string{
		"https://site.com/manga/one-piece/chapter-42",
		"https://site.com/watch/show-episode-5",
		"https://site.com/series/x/77",
		"https://site.com/",
	}
	for _, u := range urls {
		got := Progress(u, "Chapter 9", content.CategoryAnime)
		if _, ok := got.Chapter(); ok {
			t.Fatalf("anime progress for %q carried a chapter: %s", u, got)
		}
	}
	for _, u := range urls {
		got := Progress(u, "Episode 9", content.CategoryNovel)
		if _, ok := got.Episode(); ok {
			t.Fatalf("novel progress for %q carried an episode: %s", u, got)
		}
	}
}

func TestProgressSimple(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		title   string
		kind    content.ProgressKind
		wantNum float64
	}{
		{"episode", "https://site.com/show-ep-5", "", content.ProgressEpisode, 5},
		{"chapter", "https://site.com/manga/x/chapter-42", "", content.ProgressChapter, 42},
		{"trailing path", "https://site.com/x/77/", "", content.ProgressChapter, 77},
		{"title episode", "", "Episode 3", content.ProgressEpisode, 3},
		{"none", "https://site.com/about", "About us", content.ProgressNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressSimple(tt.url, tt.title)
			if got.Kind() != tt.kind {
				t.Fatalf("ProgressSimple kind = %s, want %s", got.Kind(), tt.kind)
			}
			switch tt.kind {
			case content.ProgressEpisode:
				if n, _ := got.Episode(); float64(n) != tt.wantNum {
					t.Fatalf("episode = %d, want %v", n, tt.wantNum)
				}
			case content.ProgressChapter:
				if n, _ := got.Chapter(); n != tt.wantNum {
					t.Fatalf("chapter = %v, want %v", n, tt.wantNum)
				}
			}
		})
	}
}

func TestProgressIgnoresHost(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		category content.Category
	}{
		{"chapter-like subdomain", "https://ch3.example.com/series/foo", content.CategoryManga},
		{"episode-like subdomain", "https://episode9.example.com/watch/show", content.CategoryAnime},
		{"numbered domain", "https://chapter42.net/about", content.CategoryNovel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.url, "", tt.category); !got.IsZero() {
				t.Fatalf("Progress(%q) = %s, want none", tt.url, got)
			}
			if got := ProgressSimple(tt.url, ""); !got.IsZero() {
				t.Fatalf("ProgressSimple(%q) = %s, want none", tt.url, got)
			}
		})
	}

	got := Progress("https://ch3.example.com/viewer?title=chapter-17", "", content.CategoryManga)
	if n, ok := got.Chapter(); !ok || n != 17 {
		t.Fatalf("expected chapter 17 from the query, got %s", got)
	}
}
