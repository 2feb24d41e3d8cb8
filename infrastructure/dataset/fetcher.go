package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/Igaki12/news-network-api/pkg/errors"
)

const fetchTimeout = 8 * time.Second

// Fetcher retrieves the raw JSONL dataset text from a remote source
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches datasets over plain HTTP
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with a bounded request timeout
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch downloads the dataset at url and returns its body as text. Transport
// failures and non-2xx statuses both surface as fetch-failed errors so the
// handler layer maps them uniformly.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", apperrors.NewFetchFailedError(fmt.Errorf("build request for %s: %w", url, err))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", apperrors.NewFetchFailedError(fmt.Errorf("fetch %s: %w", url, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.NewFetchFailedError(fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewFetchFailedError(fmt.Errorf("read body from %s: %w", url, err))
	}
	return string(body), nil
}
