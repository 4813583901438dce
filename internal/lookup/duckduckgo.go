package lookup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultDuckDuckGoEndpoint is the instant answer API endpoint.
const DefaultDuckDuckGoEndpoint = "https://api.duckduckgo.com/"

// DuckDuckGo looks up the abstract of a query against the DuckDuckGo
// instant answer API. Only the Abstract field of the response is
// used; the rest of the payload is an opaque external contract.
type DuckDuckGo struct {
	endpoint string
	client   *http.Client
}

// DuckDuckGoOption configures a DuckDuckGo strategy.
type DuckDuckGoOption func(*DuckDuckGo)

// WithDuckDuckGoEndpoint overrides the API endpoint.
func WithDuckDuckGoEndpoint(endpoint string) DuckDuckGoOption {
	return func(d *DuckDuckGo) {
		d.endpoint = endpoint
	}
}

// WithDuckDuckGoClient overrides the HTTP client.
func WithDuckDuckGoClient(client *http.Client) DuckDuckGoOption {
	return func(d *DuckDuckGo) {
		d.client = client
	}
}

// NewDuckDuckGo creates a DuckDuckGo lookup strategy.
func NewDuckDuckGo(opts ...DuckDuckGoOption) *DuckDuckGo {
	d := &DuckDuckGo{
		endpoint: DefaultDuckDuckGoEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements Strategy.
func (d *DuckDuckGo) Name() string {
	return "duckduckgo"
}

// Lookup implements Strategy. Returns the response's Abstract field,
// which is empty when the API has no instant answer for the query.
func (d *DuckDuckGo) Lookup(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("duckduckgo: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return gjson.GetBytes(body, "Abstract").String(), nil
}
