package classification

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"readmark/internal/content"
	"readmark/internal/textutil"
)

const (
	shortKeywordWeight = 1
	longKeywordWeight  = 2
	longKeywordLength  = 4
	siteBonus          = 50
)

// Score is one category's tally for a page.
type Score struct {
	Category content.Category `json:"category"`
	Keyword  int              `json:"keyword"`
	Site     int              `json:"site"`
	Matched  []string         `json:"matched,omitempty"`
}

// Total is the combined keyword and site score.
func (s Score) Total() int {
	return s.Keyword + s.Site
}

// Result carries the winning category and every category's score in
// priority order.
type Result struct {
	Category content.Category `json:"category"`
	Host     string           `json:"host,omitempty"`
	Scores   []Score          `json:"scores"`
}

type ruleSet struct {
	category content.Category
	keywords []string
	matcher  *ahocorasick.Matcher
	sites    []string
}

// Classifier scores page signals against per-category lexicons.
type Classifier struct {
	rules []ruleSet
}

// New builds a classifier from the supplied lexicons. Categories absent from
// the map score zero; the iteration order is always content.Categories.
func New(lexicons map[content.Category]Lexicon) *Classifier {
	c := &Classifier{}
	for _, category := range content.Categories() {
		lex := lexicons[category]
		rs := ruleSet{category: category}
		seen := make(map[string]struct{}, len(lex.Keywords))
		for _, kw := range lex.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			rs.keywords = append(rs.keywords, kw)
		}
		if len(rs.keywords) > 0 {
			rs.matcher = ahocorasick.NewStringMatcher(rs.keywords)
		}
		for _, site := range lex.Sites {
			site = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(site)), "www.")
			if site != "" {
				rs.sites = append(rs.sites, site)
			}
		}
		c.rules = append(c.rules, rs)
	}
	return c
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	return New(Lexicons())
})

// Default returns the shared classifier built from the built-in lexicons.
func Default() *Classifier {
	return defaultClassifier()
}

// Classify is shorthand for Default().Classify.
func Classify(pageURL, title, body string) content.Category {
	return Default().Classify(pageURL, title, body)
}

// Classify returns the best-scoring category for the page.
func (c *Classifier) Classify(pageURL, title, body string) content.Category {
	return c.Score(pageURL, title, body).Category
}

// Score tallies every category and picks the winner.
func (c *Classifier) Score(pageURL, title, body string) Result {
	blob := []byte(strings.ToLower(pageURL + " " + title + " " + body))
	host := textutil.Host(pageURL)

	result := Result{Category: content.DefaultCategory, Host: host, Scores: make([]Score, 0, len(c.rules))}
	best := 0
	for _, rs := range c.rules {
		score := Score{Category: rs.category}
		if rs.matcher != nil {
			seen := make(map[int]struct{})
			for _, idx := range rs.matcher.MatchThreadSafe(blob) {
				if _, dup := seen[idx]; dup || idx >= len(rs.keywords) {
					continue
				}
				seen[idx] = struct{}{}
				kw := rs.keywords[idx]
				score.Keyword += keywordWeight(kw)
				score.Matched = append(score.Matched, kw)
			}
		}
		for _, site := range rs.sites {
			if textutil.HostMatches(host, site) {
				score.Site = siteBonus
				score.Matched = append(score.Matched, site)
				break
			}
		}
		if total := score.Total(); total > best {
			best = total
			result.Category = rs.category
		}
		result.Scores = append(result.Scores, score)
	}
	return result
}

func keywordWeight(kw string) int {
	if len(kw) > longKeywordLength {
		return longKeywordWeight
	}
	return shortKeywordWeight
}
