package identification

import (
	"readmark/internal/classification"
	"readmark/internal/content"
	"readmark/internal/extract"
)

// Result is the outcome of identifying one page.
type Result struct {
	URL      string             `json:"url"`
	Title    string             `json:"title"`
	Category content.Category   `json:"category"`
	Progress content.Progress   `json:"progress"`
	Metadata *content.Candidate `json:"metadata,omitempty"`
}

// Identify derives the title, category and progress from signals without any
// network access.
func Identify(signals content.PageSignals) Result {
	category := classification.Classify(signals.URL, signals.Title, signals.BodyText)
	return identifyAs(signals, category)
}

func identifyAs(signals content.PageSignals, category content.Category) Result {
	return Result{
		URL:      signals.URL,
		Title:    extract.Title(signals.Title, signals.URL),
		Category: category,
		Progress: extract.Progress(signals.URL, signals.Title, category),
	}
}
