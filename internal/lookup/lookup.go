// Package lookup provides the reference lookup strategies for review
// items and the ordered fallback policy across them.
package lookup

import "context"

// Strategy is a single lookup source. Lookup returns the result text
// for a query, or an empty string when the source has nothing; an
// error is equivalent to an empty result for fallback purposes.
type Strategy interface {
	// Name identifies the strategy in reports.
	Name() string

	// Lookup performs the lookup. Blocking; honors ctx cancellation.
	Lookup(ctx context.Context, query string) (string, error)
}

// Report is the outcome of a chain lookup.
type Report struct {
	// Source is the name of the strategy that produced the text.
	// Empty when no strategy produced a result.
	Source string

	// Text is the lookup result, empty when nothing was found.
	Text string
}

// IsEmpty returns true if no strategy produced a result.
func (r Report) IsEmpty() bool {
	return r.Text == ""
}

// Chain tries strategies in fixed priority order and stops at the
// first non-empty result. A strategy that errors or returns an empty
// string is skipped; it is never fatal. If every strategy comes up
// empty the report is empty, which callers display as-is.
type Chain struct {
	strategies []Strategy
}

// NewChain creates a chain over the given strategies, tried in order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Strategies returns the chain's strategies in priority order.
func (c *Chain) Strategies() []Strategy {
	out := make([]Strategy, len(c.strategies))
	copy(out, c.strategies)
	return out
}

// Lookup runs the fallback policy for the query.
func (c *Chain) Lookup(ctx context.Context, query string) Report {
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return Report{}
		}

		text, err := s.Lookup(ctx, query)
		if err != nil || text == "" {
			continue
		}
		return Report{Source: s.Name(), Text: text}
	}
	return Report{}
}
