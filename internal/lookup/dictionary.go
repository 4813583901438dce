package lookup

import (
	"context"
	"net/url"
)

// DefaultDictionaryURL is the Lexin dictionary endpoint template. The
// search term is appended as the final query parameter.
const DefaultDictionaryURL = "http://lexin.udir.no/lexin.html?&dict=nbo-nny-maxi&checked-languages=E&checked-languages=N&checked-languages=NNY&search="

// Dictionary opens a dictionary page for the query in the browser.
// It is an auxiliary lookup bound to its own action; it does not
// participate in the favourites chain.
type Dictionary struct {
	urlPrefix string
	browser   *Browser
}

// DictionaryOption configures a Dictionary strategy.
type DictionaryOption func(*Dictionary)

// WithDictionaryURL overrides the endpoint template prefix.
func WithDictionaryURL(prefix string) DictionaryOption {
	return func(d *Dictionary) {
		d.urlPrefix = prefix
	}
}

// WithDictionaryBrowser overrides the browser used to open pages.
func WithDictionaryBrowser(b *Browser) DictionaryOption {
	return func(d *Dictionary) {
		d.browser = b
	}
}

// NewDictionary creates a dictionary lookup strategy.
func NewDictionary(opts ...DictionaryOption) *Dictionary {
	d := &Dictionary{
		urlPrefix: DefaultDictionaryURL,
		browser:   NewBrowser(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements Strategy.
func (d *Dictionary) Name() string {
	return "dictionary"
}

// Lookup implements Strategy.
func (d *Dictionary) Lookup(ctx context.Context, query string) (string, error) {
	return d.browser.OpenURL(ctx, d.urlPrefix+url.QueryEscape(query))
}
