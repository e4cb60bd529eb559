package textutil

import (
	"reflect"
	"testing"
)

func TestHost(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://www.MangaDex.org/title/abc", "mangadex.org"},
		{"mangadex.org/chapter/1", "mangadex.org"},
		{"http://reader.example.com:8080/x", "reader.example.com"},
		{"", ""},
		{"http://%zz", ""},
		{"/relative/path", ""},
	}
	for _, tt := range tests {
		if got := Host(tt.raw); got != tt.want {
			t.Errorf("Host(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPathSegments(t *testing.T) {
	got := PathSegments("https://site.com/manga//one-piece/chapter-12/")
	want := []string{"manga", "one-piece", "chapter-12"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PathSegments = %v, want %v", got, want)
	}
	if segs := PathSegments("::not a url"); len(segs) != 0 {
		t.Fatalf("expected no segments for malformed url, got %v", segs)
	}
}

func TestHostMatches(t *testing.T) {
	if !HostMatches("chapmanganato.to", "chapmanganato.to") {
		t.Fatal("expected exact match")
	}
	if !HostMatches("m.webtoons.com", "webtoons.com") {
		t.Fatal("expected subdomain match")
	}
	if HostMatches("notwebtoons.com", "webtoons.com") {
		t.Fatal("suffix without dot should not match")
	}
	if HostMatches("", "webtoons.com") {
		t.Fatal("empty host should not match")
	}
}

func TestLocator(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://ch3.example.com/series/foo", "/series/foo"},
		{"https://site.com/read?id=7&ch=2", "/read?id=7&ch=2"},
		{"site.com/x", "/x"},
		{"", ""},
		{"http://%zz", ""},
	}
	for _, tt := range tests {
		if got := Locator(tt.raw); got != tt.want {
			t.Errorf("Locator(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
