package pagefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"readmark/internal/config"
	"readmark/internal/content"
	"readmark/internal/services"
)

const (
	DefaultMaxBodyBytes = 4 << 20
	defaultTimeout      = 15 * time.Second
	defaultUserAgent    = "readmark/dev"
)

// Fetcher downloads pages for identification.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	maxTextChars int
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(f *Fetcher) {
		if agent = strings.TrimSpace(agent); agent != "" {
			f.userAgent = agent
		}
	}
}

// WithLimits bounds the downloaded bytes and the retained body text.
func WithLimits(maxBodyBytes int64, maxTextChars int) Option {
	return func(f *Fetcher) {
		if maxBodyBytes > 0 {
			f.maxBodyBytes = maxBodyBytes
		}
		if maxTextChars > 0 {
			f.maxTextChars = maxTextChars
		}
	}
}

// New constructs a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       &http.Client{Timeout: defaultTimeout},
		userAgent:    defaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
		maxTextChars: DefaultMaxTextChars,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FromConfig builds a Fetcher from the fetch and catalog settings.
func FromConfig(cfg *config.Config) *Fetcher {
	if cfg == nil {
		return New()
	}
	return New(
		WithHTTPClient(&http.Client{Timeout: cfg.Fetch.Timeout()}),
		WithUserAgent(cfg.Catalogs.UserAgent),
		WithLimits(cfg.Fetch.MaxBodyBytes, cfg.Fetch.MaxTextChars),
	)
}

// Fetch downloads pageURL and parses it. The returned signals carry the URL
// reached after redirects.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (content.PageSignals, error) {
	u, err := url.Parse(strings.TrimSpace(pageURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return content.PageSignals{}, services.Wrap(services.ErrValidation, "pagefetch", "fetch", fmt.Sprintf("invalid page url %q", pageURL), nil)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return content.PageSignals{}, services.Wrap(services.ErrValidation, "pagefetch", "fetch", "build request", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.5")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		var netErr interface{ Timeout() bool }
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return content.PageSignals{}, services.Wrap(services.ErrTimeout, "pagefetch", "fetch", u.Host, err)
		}
		return content.PageSignals{}, services.Wrap(services.ErrTransient, "pagefetch", "fetch", u.Host, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return content.PageSignals{}, services.Wrap(services.ErrNotFound, "pagefetch", "fetch", fmt.Sprintf("status %d", resp.StatusCode), nil)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return content.PageSignals{}, services.Wrap(services.ErrUpstream, "pagefetch", "fetch", fmt.Sprintf("status %d", resp.StatusCode), nil)
	}

	contentType := resp.Header.Get("Content-Type")
	if !isMarkup(contentType) {
		return content.PageSignals{}, services.Wrap(services.ErrValidation, "pagefetch", "fetch", fmt.Sprintf("unsupported content type %q", contentType), nil)
	}

	finalURL := u.String()
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}
	signals, err := parse(io.LimitReader(resp.Body, f.maxBodyBytes), contentType, finalURL, f.maxTextChars)
	if err != nil {
		return content.PageSignals{}, services.Wrap(services.ErrUpstream, "pagefetch", "parse", u.Host, err)
	}
	return signals, nil
}

func isMarkup(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml" || mediaType == "text/plain"
}
