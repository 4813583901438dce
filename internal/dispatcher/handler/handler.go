// Package handler provides the handler interface and types for action dispatch.
package handler

import (
	"github.com/dshills/lineup/internal/dispatcher/execctx"
	"github.com/dshills/lineup/internal/input"
)

// Handler processes a specific action or set of actions.
type Handler interface {
	// Handle executes the action and returns a result.
	Handle(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool
}

// Func is a function adapter for the Handler interface.
type Func struct {
	fn func(action input.Action, ctx *execctx.ExecutionContext) Result
}

// NewFunc creates a Func from a function.
func NewFunc(fn func(action input.Action, ctx *execctx.ExecutionContext) Result) *Func {
	return &Func{fn: fn}
}

// Handle implements Handler.Handle.
func (f *Func) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	if f.fn == nil {
		return Errorf("handler function is nil")
	}
	return f.fn(action, ctx)
}

// CanHandle implements Handler.CanHandle.
// Func always returns true; the caller must ensure correct routing.
func (f *Func) CanHandle(actionName string) bool {
	return true
}

// NamespaceHandler handles all actions within a namespace.
// A namespace is the prefix before the first dot (e.g. "mark" in
// "mark.toggle").
type NamespaceHandler interface {
	// HandleAction handles an action within this namespace.
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) Result

	// CanHandle returns true if this handler can process the action.
	CanHandle(actionName string) bool

	// Namespace returns the namespace prefix (e.g. "mark", "lookup").
	Namespace() string
}

// namespaceAdapter adapts NamespaceHandler to the Handler interface.
type namespaceAdapter struct {
	h NamespaceHandler
}

// NewNamespaceAdapter creates a Handler from a NamespaceHandler.
func NewNamespaceAdapter(h NamespaceHandler) Handler {
	return &namespaceAdapter{h: h}
}

func (a *namespaceAdapter) Handle(action input.Action, ctx *execctx.ExecutionContext) Result {
	return a.h.HandleAction(action, ctx)
}

func (a *namespaceAdapter) CanHandle(actionName string) bool {
	return a.h.CanHandle(actionName)
}
