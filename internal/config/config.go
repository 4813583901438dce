// Package config provides the review session configuration: the mark
// alphabet, key overrides, and lookup endpoints. The original design's
// global mutable keymap is replaced by an explicit validated struct
// passed in at construction time.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dshills/lineup/internal/lookup"
	"github.com/dshills/lineup/internal/review"
)

// Errors returned by configuration validation.
var (
	ErrBadKeyOverride = errors.New("key override must be a single character")
	ErrBadTemplate    = errors.New("search URL template must contain %s")
	ErrBadTimeout     = errors.New("lookup timeout must be positive")
)

// Config holds the review session configuration.
type Config struct {
	// Marks is the ordered mark alphabet. The first entry's glyph
	// is the default mark for advance operations.
	Marks []review.Entry

	// Keys maps action names to overridden trigger keys.
	Keys map[string]rune

	// Searching enables searching mode: advance-and-mark triggers
	// a favourites lookup for newly marked lines.
	Searching bool

	// AbstractAEndpoint is the provider A instant answer endpoint.
	AbstractAEndpoint string

	// AbstractBEndpoint is the provider B page summary endpoint.
	AbstractBEndpoint string

	// SearchURL is the browser fallback search template with a
	// single %s verb for the escaped query.
	SearchURL string

	// DictionaryURL is the dictionary endpoint prefix the search
	// term is appended to.
	DictionaryURL string

	// LookupTimeout bounds each lookup strategy call.
	LookupTimeout time.Duration
}

// Option configures a Config.
type Option func(*Config)

// WithMarks sets the mark alphabet entries.
func WithMarks(marks ...review.Entry) Option {
	return func(c *Config) {
		c.Marks = marks
	}
}

// WithSearching enables or disables searching mode.
func WithSearching(enable bool) Option {
	return func(c *Config) {
		c.Searching = enable
	}
}

// WithKeyOverride rebinds an action to a different trigger key.
func WithKeyOverride(action string, key rune) Option {
	return func(c *Config) {
		if c.Keys == nil {
			c.Keys = make(map[string]rune)
		}
		c.Keys[action] = key
	}
}

// WithLookupTimeout sets the per-strategy lookup timeout.
func WithLookupTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.LookupTimeout = d
	}
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Marks:             review.DefaultAlphabet().Entries(),
		AbstractAEndpoint: lookup.DefaultDuckDuckGoEndpoint,
		AbstractBEndpoint: lookup.DefaultWikipediaEndpoint,
		SearchURL:         lookup.DefaultSearchURL,
		DictionaryURL:     lookup.DefaultDictionaryURL,
		LookupTimeout:     10 * time.Second,
	}
}

// New creates a validated configuration from the defaults and options.
func New(opts ...Option) (Config, error) {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration for consistency. The mark
// alphabet rules (non-empty, unique keys and glyphs) are enforced by
// the alphabet constructor.
func (c Config) Validate() error {
	if _, err := review.NewAlphabet(c.Marks...); err != nil {
		return fmt.Errorf("marks: %w", err)
	}

	if !strings.Contains(c.SearchURL, "%s") {
		return fmt.Errorf("search_url %q: %w", c.SearchURL, ErrBadTemplate)
	}
	if c.LookupTimeout <= 0 {
		return ErrBadTimeout
	}
	return nil
}

// Alphabet builds the validated mark alphabet.
func (c Config) Alphabet() (review.Alphabet, error) {
	return review.NewAlphabet(c.Marks...)
}
