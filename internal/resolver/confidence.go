package resolver

import (
	"log/slog"

	"readmark/internal/catalog"
	"readmark/internal/logging"
	"readmark/internal/textutil"
)

type match struct {
	entry   catalog.Entry
	variant string
	score   float64
}

// bestMatch scores every title variant of up to limit entries against query
// and returns the highest scoring entry. Scanning stops once an entry reaches
// early.
func bestMatch(logger *slog.Logger, query string, entries []catalog.Entry, limit int, early float64) (match, bool) {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	best := match{score: -1}
	for idx, entry := range entries {
		variant, score := bestVariant(query, entry.Titles)
		logger.Debug("scored catalog entry",
			logging.Int("entry_index", idx),
			logging.String("entry_id", entry.ID),
			logging.String("variant", variant),
			logging.Score("score", score),
			logging.Int("variants", len(entry.Titles)))
		if score > best.score {
			best = match{entry: entry, variant: variant, score: score}
		}
		if best.score >= early {
			logger.Debug("early accept", logging.Float64("threshold", early))
			break
		}
	}
	if best.score < 0 {
		return match{}, false
	}
	return best, true
}

func bestVariant(query string, titles []string) (string, float64) {
	var (
		bestTitle string
		bestScore float64
	)
	for _, title := range titles {
		score := textutil.Similarity(query, title)
		if score > bestScore || bestTitle == "" {
			bestTitle, bestScore = title, score
		}
		if bestScore == 1 {
			break
		}
	}
	return bestTitle, bestScore
}
