// Package resolver maps a clean title and category onto canonical catalog
// metadata.
//
// Each category has an ordered catalog strategy. The resolver queries the
// primary catalog first and walks the fallbacks until one returns an entry
// whose best title variant clears the acceptance threshold. Catalog failures
// are logged and treated as misses, so Resolve reports "no match" as a nil
// candidate rather than an error.
package resolver
