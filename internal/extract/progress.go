package extract

import (
	"regexp"
	"strconv"
	"strings"

	"readmark/internal/content"
	"readmark/internal/textutil"
)

// maxPathNumber bounds the last-resort bare path segment; larger values are
// usually record IDs rather than positions.
const maxPathNumber = 5000

const number = `(\d+(?:\.\d+)?)`

var episodePatterns = []*regexp.Regexp{
	regexp.MustCompile(`episode[-_\s.]*` + number),
	regexp.MustCompile(`\bep[-_\s.]*` + number),
	regexp.MustCompile(`\bs(\d{1,2})[-_\s.]*e(\d{1,4})(?:\D|$)`),
	regexp.MustCompile(`(?:^|[^a-z0-9])e(\d{1,4})(?:\D|$)`),
}

var chapterPatterns = []*regexp.Regexp{
	regexp.MustCompile(`chapter[-_\s.]*` + number),
	regexp.MustCompile(`\bch(?:ap)?[-_\s.]*` + number),
	regexp.MustCompile(`[\[(#]` + number + `[\])]`),
	regexp.MustCompile(`/` + number + `(?:/|$|\?|#)`),
}

var simplePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:chapter|ch)[-_\s.]*` + number),
	regexp.MustCompile(`(?:episode|ep)[-_\s.]*` + number),
}

var trailingPathNumber = regexp.MustCompile(`/` + number + `/?$`)

// Progress extracts the reading or watching position for a page. Anime pages
// yield an episode, everything else a chapter. A page without a plausible
// number yields content.NoProgress.
func Progress(pageURL, title string, category content.Category) content.Progress {
	patterns := chapterPatterns
	if category.Episodic() {
		patterns = episodePatterns
	}
	for _, source := range []string{strings.ToLower(textutil.Locator(pageURL)), strings.ToLower(title)} {
		if n, ok := firstNumber(patterns, source); ok {
			return content.MarkFor(category, n)
		}
	}
	if n, ok := pathNumber(pageURL); ok {
		return content.MarkFor(category, n)
	}
	return content.NoProgress()
}

// ProgressSimple is the category-agnostic variant used when the caller has no
// category. A match whose text mentions "ep" is an episode; anything else is a
// chapter.
func ProgressSimple(pageURL, title string) content.Progress {
	for _, source := range []string{strings.ToLower(textutil.Locator(pageURL)), strings.ToLower(title)} {
		for _, pattern := range simplePatterns {
			for _, m := range pattern.FindAllStringSubmatch(source, -1) {
				n, ok := parseNumber(m[len(m)-1])
				if !ok {
					continue
				}
				if strings.Contains(m[0], "ep") {
					return content.EpisodeMark(n)
				}
				return content.ChapterMark(n)
			}
		}
	}
	if m := trailingPathNumber.FindStringSubmatch(textutil.Path(pageURL)); m != nil {
		if n, ok := parseNumber(m[1]); ok {
			return content.ChapterMark(n)
		}
	}
	return content.NoProgress()
}

func firstNumber(patterns []*regexp.Regexp, source string) (float64, bool) {
	if source == "" {
		return 0, false
	}
	for _, pattern := range patterns {
		for _, m := range pattern.FindAllStringSubmatch(source, -1) {
			if n, ok := parseNumber(lastGroup(m)); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// lastGroup returns the last non-empty capture, so compound patterns such as
// S01E05 report the episode rather than the season.
func lastGroup(match []string) string {
	for i := len(match) - 1; i > 0; i-- {
		if match[i] != "" {
			return match[i]
		}
	}
	return ""
}

func pathNumber(pageURL string) (float64, bool) {
	for _, seg := range textutil.PathSegments(pageURL) {
		n, err := strconv.Atoi(seg)
		if err != nil {
			continue
		}
		if n > 0 && n < maxPathNumber {
			return float64(n), true
		}
	}
	return 0, false
}

func parseNumber(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || !content.InRange(n) {
		return 0, false
	}
	return n, true
}
