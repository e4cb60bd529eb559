package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cleanPatterns are applied in order on every pass of Clean. Prefixes go first
// so a leading "Chapter 3 -" is not mistaken for a chapter suffix.
var cleanPatterns = []*regexp.Regexp{
	// "Read " / "Watch Anime Online " prefixes.
	regexp.MustCompile(`(?i)^(?:read|watch)(?:\s+(?:manga|manhwa|manhua|anime|novel|webtoon))?(?:\s+online)?\s+`),
	// "Chapter 12 - " prefixes. A pipe is left for the separator pattern so
	// "Chapter 12 | Site" never keeps the site name.
	regexp.MustCompile(`(?i)^(?:chapter|ch\.?|episode|ep\.?)\s*\d+(?:\.\d+)?\s*[-:–—]\s*`),
	// Leading bracketed tags such as "[Scanlator]".
	regexp.MustCompile(`^\s*[\[(][^\[\]()]{1,30}[\])]\s*`),
	// Pipe and bullet separators: everything after the first one is site cruft.
	regexp.MustCompile(`\s*[|•]\s*.*$`),
	// En/em dash separators: the last segment is the site name.
	regexp.MustCompile(`\s+[–—]\s+[^–—]*$`),
	// "Chapter 12" style suffixes and whatever trails them.
	regexp.MustCompile(`(?i)[\s\-:,]+(?:chapter|chap\.?|ch\.?|episode|ep\.?|vol(?:ume)?\.?)\s*\d+(?:\.\d+)?(?:[^\d].*)?$`),
	// " - SiteName" when the trailing segment reads like a site or reader name.
	regexp.MustCompile(`(?i)\s+-\s+[^-]*(?:\.(?:com|net|org|io|to|me|co|cc|tv|xyz|site|info)\b|\b(?:scans?|scanlations?|comics?|toons?|manga\w*|manhwa\w*|online|reader|anime\w*|novels?)\b)[^-]*$`),
	// " Read Online" / " Online Free" trailers. A bare "Online" is part of
	// titles like "Sword Art Online" and stays.
	regexp.MustCompile(`(?i)\s+(?:read|watch)\s+(?:(?:manga|manhwa|manhua|anime|novel|webtoon)\s+)?online(?:\s+(?:for\s+)?free)?$`),
	regexp.MustCompile(`(?i)\s+online\s+(?:for\s+)?free$`),
	// Trailing bracketed tags such as "(Manga)" or "[Official]".
	regexp.MustCompile(`\s*[\[(][^\[\]()]{1,30}[\])]\s*$`),
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// minorWords stay lowercase in title case unless they lead the title.
var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "or": {}, "nor": {}, "for": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "to": {}, "by": {}, "with": {}, "from": {},
	"as": {}, "into": {}, "over": {}, "upon": {}, "vs": {}, "via": {},
}

// Clean strips site boilerplate from a raw page title for display. Removal runs
// until the title stops changing, so Clean(Clean(t)) == Clean(t). A title that
// is entirely upper- or lower-case is re-cased to title case; mixed case is
// assumed intentional and kept. The result may be empty.
func Clean(title string) string {
	current := collapseSpaces(title)
	// Every pattern only removes text, so each pass either shortens the title
	// or leaves it unchanged and the loop terminates.
	for {
		next := current
		for _, pattern := range cleanPatterns {
			next = collapseSpaces(pattern.ReplaceAllString(next, ""))
		}
		next = strings.Trim(next, " -:|,–—")
		if next == current {
			break
		}
		current = next
	}
	if uniformCase(current) {
		current = TitleCase(current)
	}
	return current
}

// TitleCase capitalizes each word, keeping minor words lowercase after the
// first position.
func TitleCase(value string) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return ""
	}
	caser := cases.Title(language.Und)
	for i, word := range words {
		lower := strings.ToLower(word)
		if _, minor := minorWords[lower]; minor && i > 0 {
			words[i] = lower
			continue
		}
		words[i] = caser.String(lower)
	}
	return strings.Join(words, " ")
}

// NormalizeForMatch reduces a title to its comparison form: cleaned,
// lowercased, diacritics folded, apostrophes dropped, other punctuation turned
// into spaces. Never display the result.
func NormalizeForMatch(title string) string {
	cleaned := Clean(title)
	if cleaned == "" {
		return ""
	}
	lowered := strings.ToLower(foldDiacritics(cleaned))
	lowered = strings.ReplaceAll(lowered, "&", " and ")

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' || r == '’' || r == '`' || r == 'ʼ':
			// Apostrophes join words: "Schitt's" matches "Schitts".
		default:
			b.WriteByte(' ')
		}
	}
	return collapseSpaces(b.String())
}

func foldDiacritics(value string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, value)
	if err != nil {
		return value
	}
	return folded
}

func collapseSpaces(value string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(value, " "))
}

func uniformCase(value string) bool {
	var upper, lower bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
		if upper && lower {
			return false
		}
	}
	return upper != lower
}
