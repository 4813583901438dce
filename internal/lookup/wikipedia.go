package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultWikipediaEndpoint is the REST page summary endpoint.
// The query title is appended as a path segment.
const DefaultWikipediaEndpoint = "https://en.wikipedia.org/api/rest_v1/page/summary/"

// Wikipedia looks up the summary extract of a query against the
// Wikipedia REST API.
type Wikipedia struct {
	endpoint string
	client   *http.Client
}

// WikipediaOption configures a Wikipedia strategy.
type WikipediaOption func(*Wikipedia)

// WithWikipediaEndpoint overrides the API endpoint.
func WithWikipediaEndpoint(endpoint string) WikipediaOption {
	return func(w *Wikipedia) {
		w.endpoint = endpoint
	}
}

// WithWikipediaClient overrides the HTTP client.
func WithWikipediaClient(client *http.Client) WikipediaOption {
	return func(w *Wikipedia) {
		w.client = client
	}
}

// NewWikipedia creates a Wikipedia lookup strategy.
func NewWikipedia(opts ...WikipediaOption) *Wikipedia {
	w := &Wikipedia{
		endpoint: DefaultWikipediaEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Name implements Strategy.
func (w *Wikipedia) Name() string {
	return "wikipedia"
}

// Lookup implements Strategy. Returns the summary extract; a missing
// page (404) is an empty result, not an error.
func (w *Wikipedia) Lookup(ctx context.Context, query string) (string, error) {
	title := url.PathEscape(strings.ReplaceAll(strings.TrimSpace(query), " ", "_"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+title, nil)
	if err != nil {
		return "", err
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wikipedia: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(body, "extract").String(), nil
}
