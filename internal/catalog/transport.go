package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"readmark/internal/content"
	"readmark/internal/services"
)

const (
	DefaultLimit     = 10
	DefaultUserAgent = "readmark/dev"
	defaultTimeout   = 10 * time.Second
	maxResponseBytes = 8 << 20
)

// Transport carries the HTTP settings shared by every catalog client.
type Transport struct {
	source       content.CatalogName
	httpClient   *http.Client
	userAgent    string
	limit        int
	coverBaseURL string
}

// Option configures a catalog client.
type Option func(*Transport)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Transport) {
		if client != nil {
			t.httpClient = client
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(t *Transport) {
		if agent = strings.TrimSpace(agent); agent != "" {
			t.userAgent = agent
		}
	}
}

// WithLimit caps the number of entries requested per search.
func WithLimit(n int) Option {
	return func(t *Transport) {
		if n > 0 {
			t.limit = n
		}
	}
}

// WithTimeout replaces the default HTTP client with one using timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(t *Transport) {
		if timeout > 0 {
			t.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithCoverBaseURL overrides the host cover images are served from. Clients
// whose catalog returns absolute image URLs ignore it.
func WithCoverBaseURL(base string) Option {
	return func(t *Transport) {
		if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
			t.coverBaseURL = base
		}
	}
}

// NewTransport applies opts over the defaults for source.
func NewTransport(source content.CatalogName, coverBaseURL string, opts ...Option) Transport {
	t := Transport{
		source:       source,
		httpClient:   &http.Client{Timeout: defaultTimeout},
		userAgent:    DefaultUserAgent,
		limit:        DefaultLimit,
		coverBaseURL: strings.TrimRight(coverBaseURL, "/"),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// Limit returns the per-search entry cap.
func (t Transport) Limit() int { return t.limit }

// CoverBaseURL returns the configured cover image host.
func (t Transport) CoverBaseURL() string { return t.coverBaseURL }

// GetJSON issues a GET and decodes a 200 response into out.
func (t Transport) GetJSON(ctx context.Context, operation, endpoint string, header http.Header, out any) error {
	return t.do(ctx, http.MethodGet, operation, endpoint, nil, header, out)
}

// PostJSON encodes body, POSTs it, and decodes a 200 response into out.
func (t Transport) PostJSON(ctx context.Context, operation, endpoint string, body any, header http.Header, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return services.Wrap(services.ErrValidation, string(t.source), operation, "encode request", err)
	}
	if header == nil {
		header = http.Header{}
	}
	header.Set("Content-Type", "application/json")
	return t.do(ctx, http.MethodPost, operation, endpoint, payload, header, out)
}

func (t Transport) do(ctx context.Context, method, operation, endpoint string, body []byte, header http.Header, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return services.Wrap(services.ErrValidation, string(t.source), operation, "build request", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set("User-Agent", t.userAgent)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		marker := services.ErrUpstream
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			marker = services.ErrTimeout
		}
		return services.Wrap(marker, string(t.source), operation, fmt.Sprintf("execute request (latency=%v)", latency), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return services.Wrap(services.ErrNotFound, string(t.source), operation, "record not found", nil)
	case resp.StatusCode != http.StatusOK:
		return services.Wrap(services.ErrUpstream, string(t.source), operation, fmt.Sprintf("returned %d (latency=%v)", resp.StatusCode, latency), nil)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return services.Wrap(services.ErrUpstream, string(t.source), operation, "decode response", err)
	}
	return nil
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}
