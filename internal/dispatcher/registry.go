package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/lineup/internal/dispatcher/handler"
)

// Registry manages handler registration by exact action name and by
// namespace prefix.
type Registry struct {
	mu         sync.RWMutex
	handlers   map[string]handler.Handler
	namespaces map[string]handler.Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:   make(map[string]handler.Handler),
		namespaces: make(map[string]handler.Handler),
	}
}

// Register adds a handler for an exact action name.
func (r *Registry) Register(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionName] = h
}

// RegisterNamespace adds a handler for a whole namespace.
func (r *Registry) RegisterNamespace(h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[h.Namespace()] = handler.NewNamespaceAdapter(h)
}

// Unregister removes the handler for an action name.
func (r *Registry) Unregister(actionName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, actionName)
}

// Get returns the handler for an action. Exact-name handlers win
// over namespace handlers. Returns nil if nothing is registered.
func (r *Registry) Get(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.handlers[actionName]; ok {
		return h
	}

	if i := strings.Index(actionName, "."); i > 0 {
		if h, ok := r.namespaces[actionName[:i]]; ok && h.CanHandle(actionName) {
			return h
		}
	}
	return nil
}

// Has returns true if a handler is registered for the action.
func (r *Registry) Has(actionName string) bool {
	return r.Get(actionName) != nil
}

// List returns all exactly registered action names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all registered handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = make(map[string]handler.Handler)
	r.namespaces = make(map[string]handler.Handler)
}
