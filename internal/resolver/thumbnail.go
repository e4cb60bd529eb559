package resolver

import (
	"context"
	"io"
	"net/http"
	"strings"

	"readmark/internal/logging"
)

// ValidateThumbnail checks that imageURL serves an image. It returns the URL
// unchanged on success and "" when the image is unreachable or is not an
// image. Servers that refuse HEAD are retried with a single-byte ranged GET.
func (r *Resolver) ValidateThumbnail(ctx context.Context, imageURL string) string {
	imageURL = strings.TrimSpace(imageURL)
	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		return ""
	}
	logger := logging.WithContext(ctx, r.logger).With(logging.String("thumbnail_url", imageURL))

	status, contentType, err := r.probe(ctx, http.MethodHead, imageURL)
	if err == nil && (status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented || status == http.StatusForbidden) {
		status, contentType, err = r.probe(ctx, http.MethodGet, imageURL)
	}
	if err != nil {
		logger.Debug("thumbnail unreachable", logging.Error(err))
		return ""
	}
	if status != http.StatusOK && status != http.StatusPartialContent {
		logger.Debug("thumbnail rejected", logging.Int("status", status))
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		logger.Debug("thumbnail is not an image", logging.String("content_type", contentType))
		return ""
	}
	return imageURL
}

func (r *Resolver) probe(ctx context.Context, method, imageURL string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, imageURL, nil)
	if err != nil {
		return 0, "", err
	}
	if method == http.MethodGet {
		req.Header.Set("Range", "bytes=0-0")
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
	return resp.StatusCode, resp.Header.Get("Content-Type"), nil
}
