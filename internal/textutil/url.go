package textutil

import (
	"net/url"
	"strings"
)

// parseLoose parses raw as a URL, assuming http when the scheme is missing.
// Unparseable input yields nil.
func parseLoose(raw string) *url.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if !strings.Contains(raw, "://") && !strings.HasPrefix(raw, "/") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return parsed
}

// Host returns the lowercase host of raw without port or a leading "www.".
// Malformed input returns "".
func Host(raw string) string {
	parsed := parseLoose(raw)
	if parsed == nil {
		return ""
	}
	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www.")
}

// Path returns the unescaped path of raw, or "" when raw cannot be parsed.
func Path(raw string) string {
	parsed := parseLoose(raw)
	if parsed == nil {
		return ""
	}
	return parsed.Path
}

// Locator returns the path and query of raw without scheme or host, so numbers
// in a domain name never read as positions. Malformed input returns "".
func Locator(raw string) string {
	parsed := parseLoose(raw)
	if parsed == nil {
		return ""
	}
	if parsed.RawQuery == "" {
		return parsed.Path
	}
	return parsed.Path + "?" + parsed.RawQuery
}

// PathSegments splits the path of raw into its non-empty segments.
func PathSegments(raw string) []string {
	parts := strings.Split(Path(raw), "/")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// HostMatches reports whether host equals site or is a subdomain of it.
func HostMatches(host, site string) bool {
	if host == "" || site == "" {
		return false
	}
	return host == site || strings.HasSuffix(host, "."+site)
}
