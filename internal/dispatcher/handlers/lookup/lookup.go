// Package lookup provides handlers for item lookup actions.
package lookup

import (
	"github.com/dshills/lineup/internal/dispatcher/execctx"
	"github.com/dshills/lineup/internal/dispatcher/handler"
	"github.com/dshills/lineup/internal/input"
)

// Action names for lookup operations.
const (
	ActionFavourites = "lookup.favourites"
	ActionAbstractA  = "lookup.abstractA"
	ActionAbstractB  = "lookup.abstractB"
	ActionBrowser    = "lookup.browser"
	ActionDictionary = "lookup.dictionary"
)

// actionProviders maps individual lookup actions to provider keys.
var actionProviders = map[string]string{
	ActionAbstractA:  execctx.ProviderAbstractA,
	ActionAbstractB:  execctx.ProviderAbstractB,
	ActionBrowser:    execctx.ProviderBrowser,
	ActionDictionary: execctx.ProviderDictionary,
}

// Handler implements namespace-based lookup action handling.
//
// Lookup actions read the item at the cursor and never mutate the
// buffer, so they carry no column precondition: the item search
// simply starts from wherever the cursor is on the current line.
type Handler struct{}

// NewHandler creates a new lookup handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the lookup namespace.
func (h *Handler) Namespace() string {
	return "lookup"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	if actionName == ActionFavourites {
		return true
	}
	_, ok := actionProviders[actionName]
	return ok
}

// HandleAction processes a lookup action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Buffer == nil {
		return handler.Error(execctx.ErrMissingBuffer)
	}
	if ctx.Cursors == nil {
		return handler.Error(execctx.ErrMissingCursors)
	}
	if ctx.Marker == nil {
		return handler.Error(execctx.ErrMissingMarker)
	}

	item, ok := ctx.Marker.ItemAt(ctx.Buffer, ctx.Cursors.Get())
	if !ok {
		// No item on the line: an empty report, not an error.
		return handler.NoOp().WithReport("")
	}

	if action.Name == ActionFavourites {
		if ctx.Favourites == nil {
			return handler.Error(execctx.ErrMissingLookup)
		}
		report := ctx.Favourites.Lookup(ctx.Ctx, item.Text)
		return handler.Success().WithReport(report.Text)
	}

	name, ok := actionProviders[action.Name]
	if !ok {
		return handler.Errorf("unknown lookup action: %s", action.Name)
	}

	provider := ctx.Provider(name)
	if provider == nil {
		return handler.Errorf("lookup provider %s not configured", name)
	}

	text, err := provider.Lookup(ctx.Ctx, item.Text)
	if err != nil {
		// A failing provider reports empty, matching the chain's
		// treatment of errors as "no result".
		return handler.Success().WithReport("")
	}
	return handler.Success().WithReport(text)
}
