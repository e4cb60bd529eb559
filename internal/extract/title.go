package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"readmark/internal/textutil"
)

// Untitled is returned when neither the page title nor the URL yields a name.
const Untitled = "Untitled"

const minTitleLength = 3

var titleTrailers = []*regexp.Regexp{
	regexp.MustCompile(`\s*\|.*$`),
	regexp.MustCompile(`(?i)\s*[-:–—]?\s*\b(?:chapter|ch\.?|episode|ep\.?)\s*\d+(?:\.\d+)?\b.*$`),
	regexp.MustCompile(`\s*[\[(][^\[\]()]{1,30}[\])]\s*$`),
	regexp.MustCompile(`(?i)\s*[-:–—]?\s*\b(?:read|watch)\b[^|]*\bonline\b.*$`),
}

var titleLeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:read|watch)\s+`),
	regexp.MustCompile(`(?i)^(?:chapter|ch\.?|episode|ep\.?)\s*\d+(?:\.\d+)?\s*[-:–—]\s*`),
}

var placeholderTitles = map[string]struct{}{
	"home": {}, "index": {}, "page": {}, "read": {}, "watch": {},
	"chapter": {}, "episode": {}, "untitled": {}, "loading": {},
}

// structuralSegments are URL path words that describe site layout rather than
// the work itself.
var structuralSegments = map[string]struct{}{
	"manga": {}, "manhwa": {}, "manhua": {}, "chapter": {}, "chapters": {},
	"series": {}, "read": {}, "watch": {}, "title": {}, "titles": {},
	"comic": {}, "comics": {}, "novel": {}, "novels": {}, "anime": {},
	"webtoon": {}, "webtoons": {}, "episode": {}, "episodes": {}, "ep": {}, "eps": {}, "book": {},
	"books": {}, "fiction": {}, "viewer": {}, "reader": {}, "list": {},
	"en": {}, "www": {}, "index.html": {}, "online": {}, "w": {}, "s": {},
}

var (
	numericSegment = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	uuidSegment    = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	chapterSlug    = regexp.MustCompile(`(?i)(?:^|[-_])(?:chapter|chap|ch|episode|ep)[-_]?\d+.*$`)
	fileExtension  = regexp.MustCompile(`(?i)\.(?:html?|php|aspx?)$`)
	trailingDigits = regexp.MustCompile(`[\s\d.]+$`)
)

// Title derives a display title from the page title, falling back to the URL
// path when the page title is empty or a placeholder.
func Title(pageTitle, pageURL string) string {
	if title := titleFromPage(pageTitle); usable(title) {
		return title
	}
	return TitleFromURL(pageURL)
}

func titleFromPage(pageTitle string) string {
	current := strings.TrimSpace(pageTitle)
	for _, pattern := range titleLeaders {
		current = strings.TrimSpace(pattern.ReplaceAllString(current, ""))
	}
	for _, pattern := range titleTrailers {
		if next := strings.TrimSpace(pattern.ReplaceAllString(current, "")); next != "" {
			current = next
		}
	}
	return textutil.Clean(current)
}

func usable(title string) bool {
	if utf8.RuneCountInString(title) < minTitleLength {
		return false
	}
	key := strings.ToLower(strings.TrimSpace(trailingDigits.ReplaceAllString(title, "")))
	if key == "" {
		return false
	}
	_, placeholder := placeholderTitles[key]
	return !placeholder
}

// TitleFromURL title-cases the first path segment that names the work,
// skipping numeric IDs and structural words. It returns Untitled when no
// segment qualifies.
func TitleFromURL(pageURL string) string {
	for _, seg := range textutil.PathSegments(pageURL) {
		seg = fileExtension.ReplaceAllString(seg, "")
		lower := strings.ToLower(seg)
		if _, skip := structuralSegments[lower]; skip {
			continue
		}
		if numericSegment.MatchString(seg) || uuidSegment.MatchString(seg) {
			continue
		}
		seg = chapterSlug.ReplaceAllString(seg, "")
		words := strings.FieldsFunc(seg, func(r rune) bool {
			return r == '-' || r == '_' || r == '+' || unicode.IsSpace(r)
		})
		if countLetters(words) < 2 {
			continue
		}
		return textutil.TitleCase(strings.Join(words, " "))
	}
	return Untitled
}

func countLetters(words []string) int {
	n := 0
	for _, w := range words {
		for _, r := range w {
			if unicode.IsLetter(r) {
				n++
			}
		}
	}
	return n
}
