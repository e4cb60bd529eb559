package pagefetch

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"readmark/internal/content"
)

// DefaultMaxTextChars caps the body text kept from a page.
const DefaultMaxTextChars = 4000

var whitespaceRe = regexp.MustCompile(`\s+`)

// Parse decodes an HTML document and extracts its signals. The charset is
// taken from contentType or sniffed from the markup.
func Parse(r io.Reader, contentType, pageURL string) (content.PageSignals, error) {
	return parse(r, contentType, pageURL, DefaultMaxTextChars)
}

func parse(r io.Reader, contentType, pageURL string, maxTextChars int) (content.PageSignals, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return content.PageSignals{}, fmt.Errorf("read page: %w", err)
	}

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return content.PageSignals{}, fmt.Errorf("decode page: %w", err)
		}
		utf8data = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
	if err != nil {
		return content.PageSignals{}, fmt.Errorf("parse page: %w", err)
	}
	doc.Find("script,noscript,style").Remove()

	title := collapse(doc.Find("title").First().Text())
	if title == "" {
		title = collapse(doc.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	}

	var parts []string
	doc.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		if t := collapse(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if maxTextChars <= 0 {
		maxTextChars = DefaultMaxTextChars
	}

	return content.PageSignals{
		URL:      pageURL,
		Title:    title,
		BodyText: truncate(strings.Join(parts, " "), maxTextChars),
	}, nil
}

func collapse(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit]))
}
