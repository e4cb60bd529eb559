// Package identification turns raw page signals into a reading record seed:
// a clean title, a category, a progress mark and, optionally, canonical
// catalog metadata.
//
// Identify is the pure, offline half of the pipeline. Identifier adds the
// network half: it runs the resolver cascade for the cleaned title and checks
// the winning thumbnail so callers never render a broken image.
package identification
