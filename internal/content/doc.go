// Package content defines the value types that flow through readmark's
// identification pipeline.
//
// PageSignals carries the raw page inputs, Category is the closed set of media
// kinds the classifier may return, Progress is the tagged chapter/episode
// position, and Candidate is the metadata recovered from an external catalog.
// None of these types are persisted by the engine; callers merge them into
// their own records.
package content
