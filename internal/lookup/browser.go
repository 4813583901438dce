package lookup

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// DefaultSearchURL is the web search template used by the browser
// fallback. The query replaces the %s verb.
const DefaultSearchURL = "https://duckduckgo.com/?q=%s"

// Browser opens a web search for the query in the user's browser.
// As the final fallback in a chain its "result" is the confirmation
// line, so a chain ending in a Browser never reports empty unless
// the opener itself fails.
type Browser struct {
	searchURL string
	open      func(ctx context.Context, target string) error
}

// BrowserOption configures a Browser strategy.
type BrowserOption func(*Browser)

// WithSearchURL overrides the search URL template. The template must
// contain a single %s verb for the escaped query.
func WithSearchURL(template string) BrowserOption {
	return func(b *Browser) {
		b.searchURL = template
	}
}

// WithOpener overrides how URLs are opened. Used by tests and by
// embedders that route URL opening through the host environment.
func WithOpener(open func(ctx context.Context, target string) error) BrowserOption {
	return func(b *Browser) {
		b.open = open
	}
}

// NewBrowser creates a browser-opening lookup strategy.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{
		searchURL: DefaultSearchURL,
		open:      openInBrowser,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements Strategy.
func (b *Browser) Name() string {
	return "browser"
}

// Lookup implements Strategy.
func (b *Browser) Lookup(ctx context.Context, query string) (string, error) {
	target := fmt.Sprintf(b.searchURL, url.QueryEscape(query))
	if err := b.open(ctx, target); err != nil {
		return "", err
	}
	return "opened " + target, nil
}

// OpenURL opens an arbitrary URL with the strategy's opener.
func (b *Browser) OpenURL(ctx context.Context, target string) (string, error) {
	if err := b.open(ctx, target); err != nil {
		return "", err
	}
	return "opened " + target, nil
}

// openInBrowser launches the platform URL opener.
func openInBrowser(ctx context.Context, target string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler"}
	default:
		name = "xdg-open"
	}

	args = append(args, target)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", redact(target), err)
	}

	// Release the process; the browser outlives the lookup.
	go func() { _ = cmd.Wait() }()
	return nil
}

// redact trims a URL to its host for error messages.
func redact(target string) string {
	if i := strings.Index(target, "?"); i >= 0 {
		return target[:i]
	}
	return target
}
