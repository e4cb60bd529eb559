package textutil

import (
	"math"
	"testing"
)

func TestSimilarityIdentical(t *testing.T) {
	for _, title := range []string{"One Piece", "", "!!!", "ソードアート・オンライン", "Chapter 5"} {
		if got := Similarity(title, title); got != 1 {
			t.Fatalf("Similarity(%q, %q) = %v, want 1", title, title, got)
		}
	}
}

func TestSimilarityEmptySide(t *testing.T) {
	if got := Similarity("One Piece", ""); got != 0 {
		t.Fatalf("Similarity with empty side = %v, want 0", got)
	}
}

func TestSimilarityContainment(t *testing.T) {
	// "great adventure" (15) inside "the great adventure" (19).
	got := Similarity("The Great Adventure", "great adventure (Manga)")
	want := 15.0 / 19.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Similarity containment = %v, want %v", got, want)
	}
}

func TestSimilarityTokenOverlap(t *testing.T) {
	// tokens {attack, titan, final} vs {titan, attack, season}: 2 of 4.
	got := Similarity("Attack Titan Final", "Titan Attack Season")
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("Similarity token overlap = %v, want 0.5", got)
	}
}

func TestSimilarityCompletelyDifferent(t *testing.T) {
	if got := Similarity("Berserk", "Vagabond"); got != 0 {
		t.Fatalf("Similarity(different) = %v, want 0", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"The Great Adventure", "great adventure (Manga)"},
		{"Attack on Titan", "Shingeki no Kyojin: Attack on Titan"},
		{"Solo Leveling", "Only I Level Up"},
		{"", "Something"},
	}
	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Fatalf("Similarity not symmetric for %q/%q: %v vs %v", pair[0], pair[1], ab, ba)
		}
	}
}

func TestSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"Frieren", "Frieren: Beyond Journey's End"},
		{"One Punch Man", "One-Punch Man"},
	}
	for _, pair := range pairs {
		got := Similarity(pair[0], pair[1])
		if got < 0 || got > 1 {
			t.Fatalf("Similarity(%q, %q) = %v out of range", pair[0], pair[1], got)
		}
	}
}

func TestIsSameWork(t *testing.T) {
	if !IsSameWork("The Great Adventure", "great adventure (Manga)", DefaultSameWorkThreshold) {
		t.Fatal("expected titles to be the same work")
	}
	if IsSameWork("Naruto", "Bleach", DefaultSameWorkThreshold) {
		t.Fatal("expected different works")
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	got := Tokenize("re zero in another world")
	want := []string{"zero", "another", "world"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tokenize = %v, want %v", got, want)
		}
	}
}
