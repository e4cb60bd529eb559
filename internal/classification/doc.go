// Package classification decides which kind of serialized work a page shows.
//
// A Classifier scores the page URL, title, and optional body text against one
// static lexicon per category. Keywords are matched with one Aho-Corasick
// automaton per category and weighted by length; a URL host found in a
// category's known-site list adds a flat bonus large enough to dominate
// keyword noise. The best total wins, ties fall to content.Categories order,
// and a page with no signal at all is classified as content.DefaultCategory.
//
// Classifiers are immutable after construction and safe for concurrent use.
package classification
