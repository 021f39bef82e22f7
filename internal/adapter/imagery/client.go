// Package imagery fetches representative region photographs over HTTP.
// Fetch failures are expected and recoverable: callers substitute the
// embedded placeholder image, so no error from this package should ever
// surface to a dashboard user.
package imagery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// maxPhotoBytes caps the accepted payload size. The Wikimedia originals are
// a few MB; anything past this is treated as a failed fetch.
const maxPhotoBytes = 16 << 20

// Result is a fetched image payload.
type Result struct {
	Data        []byte
	ContentType string
}

// Source fetches an image by URL.
type Source interface {
	Fetch(ctx context.Context, url string) (Result, error)
}

// Client implements Source using net/http with a bounded timeout.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a photo fetch client.
func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Fetch retrieves the image at url. Any non-200 status, transport error, or
// non-image payload is returned as an error for the caller to recover from.
func (c *Client) Fetch(ctx context.Context, url string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("photo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("photo fetch: status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return Result{}, fmt.Errorf("photo fetch: unexpected content type %q", contentType)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPhotoBytes+1))
	if err != nil {
		return Result{}, fmt.Errorf("read photo body: %w", err)
	}
	if len(data) > maxPhotoBytes {
		return Result{}, fmt.Errorf("photo fetch: payload exceeds %d bytes", maxPhotoBytes)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	c.logger.Debug("photo fetched", "url", url, "bytes", len(data), "content_type", contentType)
	return Result{Data: data, ContentType: contentType}, nil
}
