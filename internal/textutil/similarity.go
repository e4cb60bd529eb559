package textutil

import (
	"strings"
	"unicode/utf8"
)

// DefaultSameWorkThreshold is the similarity at which two titles are treated
// as naming the same work.
const DefaultSameWorkThreshold = 0.6

// Similarity scores two titles in [0, 1]. Exact and containment matches are
// checked before the coarser token overlap.
func Similarity(a, b string) float64 {
	na := NormalizeForMatch(a)
	nb := NormalizeForMatch(b)
	if na == nb {
		return 1
	}
	if na == "" || nb == "" {
		return 0
	}

	shorter, longer := na, nb
	if utf8.RuneCountInString(shorter) > utf8.RuneCountInString(longer) {
		shorter, longer = longer, shorter
	}
	if strings.Contains(longer, shorter) {
		return float64(utf8.RuneCountInString(shorter)) / float64(utf8.RuneCountInString(longer))
	}

	return jaccard(tokenSet(na), tokenSet(nb))
}

// IsSameWork reports whether Similarity(a, b) reaches threshold.
func IsSameWork(a, b string, threshold float64) bool {
	return Similarity(a, b) >= threshold
}

// Tokenize splits a normalized title on whitespace, dropping tokens of two
// characters or fewer.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if utf8.RuneCountInString(field) <= 2 {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

func tokenSet(normalized string) map[string]struct{} {
	tokens := Tokenize(normalized)
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var intersection int
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
