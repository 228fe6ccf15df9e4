package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher retrieves the raw body at url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches over HTTP with a shared request budget. Bodies are
// returned untouched; XML documents carry their own encoding declaration.
type HTTPFetcher struct {
	client  *http.Client
	limiter *rateLimiter
}

// NewHTTPFetcher allows maxRequests per window. A nil client gets a 30
// second timeout.
func NewHTTPFetcher(client *http.Client, maxRequests int, window time.Duration) *HTTPFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxRequests <= 0 {
		maxRequests = 20
	}
	if window <= 0 {
		window = 10 * time.Second
	}
	return &HTTPFetcher{client: client, limiter: newRateLimiter(maxRequests, window)}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &HTTPStatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
