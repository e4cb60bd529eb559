// Package textutil provides the title text processing shared by extraction and
// catalog matching.
//
// The primary use cases are:
//   - Cleaning raw page titles into display titles (Clean)
//   - Reducing titles to a comparison form (NormalizeForMatch)
//   - Scoring how likely two titles name the same work (Similarity, IsSameWork)
//
// The comparison form lowercases text, folds diacritics, and replaces
// punctuation with spaces. It must never be shown to a user. Tokenization for
// overlap scoring splits on whitespace and drops tokens shorter than 3
// characters.
package textutil
