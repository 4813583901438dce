// Package execctx provides the execution context for action handlers.
package execctx

import (
	"context"

	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
	"github.com/dshills/lineup/internal/lookup"
	"github.com/dshills/lineup/internal/review"
)

// Provider keys for the individual lookup strategies reachable from
// handlers outside the favourites chain.
const (
	ProviderAbstractA  = "abstractA"
	ProviderAbstractB  = "abstractB"
	ProviderBrowser    = "browser"
	ProviderDictionary = "dictionary"
)

// ExecutionContext carries the session state handlers operate on.
// Every operation receives its document and cursor explicitly; there
// is no ambient buffer.
type ExecutionContext struct {
	// Ctx is the context for blocking lookup calls.
	Ctx context.Context

	// Buffer is the document under review.
	Buffer *buffer.Buffer

	// Cursors owns the cursor position.
	Cursors *cursor.Holder

	// Marker implements the line marking operations.
	Marker *review.Marker

	// Favourites is the ordered lookup fallback chain.
	Favourites *lookup.Chain

	// Providers are the individually addressable lookup strategies.
	Providers map[string]lookup.Strategy
}

// New creates an empty execution context.
func New() *ExecutionContext {
	return &ExecutionContext{
		Ctx:       context.Background(),
		Providers: make(map[string]lookup.Strategy),
	}
}

// Provider returns the named lookup strategy, or nil.
func (c *ExecutionContext) Provider(name string) lookup.Strategy {
	if c.Providers == nil {
		return nil
	}
	return c.Providers[name]
}
