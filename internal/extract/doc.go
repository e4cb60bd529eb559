// Package extract pulls a reading position and a display title out of page
// signals.
//
// Progress walks an ordered chain of numeric patterns (episode patterns for
// anime, chapter patterns otherwise) over the URL, then the title, then the
// bare URL path, and returns the first plausible number as a content.Progress.
// Title strips reader-site boilerplate from the page title and falls back to
// a title derived from the URL path when what remains is a placeholder.
//
// Every function here is total: malformed URLs, empty strings, and unicode
// input degrade to NoProgress or "Untitled" rather than failing.
package extract
