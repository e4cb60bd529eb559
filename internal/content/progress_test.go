package content

import (
	"encoding/json"
	"testing"
)

func TestMarkForKeepsVariantsExclusive(t *testing.T) {
	for _, category := range Categories() {
		mark := MarkFor(category, 12.5)
		_, hasChapter := mark.Chapter()
		_, hasEpisode := mark.Episode()
		if category == CategoryAnime {
			if hasChapter || !hasEpisode {
				t.Fatalf("%s: expected episode only, got %v", category, mark)
			}
			if ep, _ := mark.Episode(); ep != 12 {
				t.Fatalf("expected floored episode 12, got %d", ep)
			}
			continue
		}
		if hasEpisode || !hasChapter {
			t.Fatalf("%s: expected chapter only, got %v", category, mark)
		}
	}
}

func TestMarksRejectOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		mark Progress
	}{
		{"zero chapter", ChapterMark(0)},
		{"negative chapter", ChapterMark(-3)},
		{"huge chapter", ChapterMark(10000)},
		{"fractional episode below one", EpisodeMark(0.5)},
		{"huge episode", EpisodeMark(12000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.mark.IsZero() {
				t.Fatalf("expected NoProgress, got %v", tt.mark)
			}
		})
	}
}

func TestProgressJSON(t *testing.T) {
	tests := []struct {
		mark Progress
		want string
	}{
		{ChapterMark(12.5), `{"chapter":12.5}`},
		{EpisodeMark(5), `{"episode":5}`},
		{NoProgress(), `{}`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.mark)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.mark, err)
		}
		if string(data) != tt.want {
			t.Fatalf("marshal %v = %s, want %s", tt.mark, data, tt.want)
		}
		var back Progress
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != tt.mark {
			t.Fatalf("round trip %s = %v, want %v", data, back, tt.mark)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if got, err := ParseCategory(" Anime "); err != nil || got != CategoryAnime {
		t.Fatalf("ParseCategory(anime) = %q, %v", got, err)
	}
	if got, err := ParseCategory("webtoon"); err != nil || got != CategoryWebcomic {
		t.Fatalf("ParseCategory(webtoon) = %q, %v", got, err)
	}
	if _, err := ParseCategory("podcast"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
