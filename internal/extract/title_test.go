package extract

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name      string
		pageTitle string
		url       string
		want      string
	}{
		{"site and chapter trailers", "Read My Story - Chapter 12 | ReaderSite", "", "My Story"},
		{"watch prefix", "Watch Frieren Episode 3 — AnimeSite", "", "Frieren"},
		{"read online trailer", "Chainsaw Man Chapter 150 Read Online", "", "Chainsaw Man"},
		{"bracket tag", "Solo Leveling (Official)", "", "Solo Leveling"},
		{"uniform case", "ONE PIECE", "", "One Piece"},
		{"leading chapter", "Chapter 5 - The Beginning After the End", "", "The Beginning After the End"},
		{"placeholder falls back", "Home", "https://site.com/manga/solo-leveling/", "Solo Leveling"},
		{"numbered placeholder", "Page 2", "https://site.com/series/omniscient-reader/", "Omniscient Reader"},
		{"empty title", "", "https://site.com/manga/solo-leveling/chapter-12", "Solo Leveling"},
		{"site after chapter leader", "Chapter 12 | MangaSite", "https://site.com/manga/solo-leveling/chapter-12", "Solo Leveling"},
		{"site after episode leader", "Episode 4 | AnimeSite", "https://site.com/watch/frieren/ep/4", "Frieren"},
		{"too short", "ab", "", Untitled},
		{"nothing at all", "", "", Untitled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.pageTitle, tt.url); got != tt.want {
				t.Fatalf("Title(%q, %q) = %q, want %q", tt.pageTitle, tt.url, got, tt.want)
			}
		})
	}
}

func TestTitleFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://mangadex.org/title/a1b2c3d4-1111-2222-3333-444455556666/one-piece", "One Piece"},
		{"https://site.com/read/one_piece-chapter-1000", "One Piece"},
		{"https://site.com/series/the-tower-of-god.html", "The Tower of God"},
		{"https://site.com/123/456", Untitled},
		{"https://x.com/ep/0", Untitled},
		{"https://x.com/eps/12", Untitled},
		{"https://site.com/anime/frieren/ep/3", "Frieren"},
		{"https://site.com/", Untitled},
		{"::::", Untitled},
		{"", Untitled},
	}
	for _, tt := range tests {
		if got := TitleFromURL(tt.url); got != tt.want {
			t.Fatalf("TitleFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
