// Package dispatcher routes actions to handlers and coordinates execution.
package dispatcher

import (
	"context"
	"runtime"
	"sync"

	"github.com/dshills/lineup/internal/dispatcher/execctx"
	"github.com/dshills/lineup/internal/dispatcher/handler"
	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
	"github.com/dshills/lineup/internal/input"
	"github.com/dshills/lineup/internal/lookup"
	"github.com/dshills/lineup/internal/review"
)

// PreDispatchHook runs before an action is dispatched.
// Returning false cancels the action.
type PreDispatchHook interface {
	PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook runs after an action is dispatched.
type PostDispatchHook interface {
	PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)
}

// PreDispatchFunc adapts a function to PreDispatchHook.
type PreDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(action *input.Action, ctx *execctx.ExecutionContext) bool {
	return f(action, ctx)
}

// PostDispatchFunc adapts a function to PostDispatchHook.
type PostDispatchFunc func(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	f(action, ctx, result)
}

// Dispatcher routes actions to handlers. Dispatch is strictly
// synchronous: each action completes before the next is processed,
// matching the one-keystroke-one-operation model.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry

	// Session subsystems
	buf        *buffer.Buffer
	cursors    *cursor.Holder
	marker     *review.Marker
	favourites *lookup.Chain
	providers  map[string]lookup.Strategy
	baseCtx    context.Context

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook
}

// New creates a new dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		registry:  NewRegistry(),
		providers: make(map[string]lookup.Strategy),
		baseCtx:   context.Background(),
	}
}

// SetBuffer sets the document under review.
func (d *Dispatcher) SetBuffer(buf *buffer.Buffer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf = buf
}

// SetCursors sets the cursor holder.
func (d *Dispatcher) SetCursors(cursors *cursor.Holder) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursors = cursors
}

// SetMarker sets the line marker.
func (d *Dispatcher) SetMarker(marker *review.Marker) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.marker = marker
}

// SetFavourites sets the lookup fallback chain.
func (d *Dispatcher) SetFavourites(chain *lookup.Chain) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.favourites = chain
}

// SetProvider registers an individually addressable lookup strategy.
func (d *Dispatcher) SetProvider(name string, s lookup.Strategy) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.providers[name] = s
}

// SetBaseContext sets the context handed to lookup calls.
func (d *Dispatcher) SetBaseContext(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.baseCtx = ctx
}

// Registry returns the handler registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.registry.Register(actionName, h)
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(h handler.NamespaceHandler) {
	d.registry.RegisterNamespace(h)
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// Dispatch executes an action synchronously.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	ctx := d.buildContext()

	if !d.runPreHooks(&action, ctx) {
		return handler.NoOpWithMessage("cancelled by hook")
	}

	h := d.registry.Get(action.Name)
	if h == nil {
		return handler.Errorf("no handler for action: %s", action.Name)
	}

	result := d.executeWithRecovery(h, action, ctx)

	d.runPostHooks(&action, ctx, &result)

	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			result = handler.Errorf("handler panic for %s: %v\n%s", action.Name, r, string(stack[:n]))
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext builds an execution context from current state.
func (d *Dispatcher) buildContext() *execctx.ExecutionContext {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ctx := execctx.New()
	ctx.Ctx = d.baseCtx
	ctx.Buffer = d.buf
	ctx.Cursors = d.cursors
	ctx.Marker = d.marker
	ctx.Favourites = d.favourites
	for name, s := range d.providers {
		ctx.Providers[name] = s
	}

	return ctx
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the action.
func (d *Dispatcher) runPreHooks(action *input.Action, ctx *execctx.ExecutionContext) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(action, ctx) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(action *input.Action, ctx *execctx.ExecutionContext, result *handler.Result) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(action, ctx, result)
	}
}
