// Package input defines actions produced by key resolution and
// consumed by the dispatcher.
package input

// Action is a named command with optional arguments.
type Action struct {
	// Name is the action identifier, namespaced by a dot
	// (e.g. "mark.toggle", "lookup.favourites").
	Name string

	// Rune is the character of the originating keypress, used by
	// the self-insert fallback when a mark operation's column
	// precondition does not hold.
	Rune rune

	// Args holds action-specific arguments.
	Args map[string]any
}

// GetString retrieves a string argument.
func (a Action) GetString(key string) string {
	if a.Args == nil {
		return ""
	}
	if s, ok := a.Args[key].(string); ok {
		return s
	}
	return ""
}

// GetBool retrieves a bool argument.
func (a Action) GetBool(key string) bool {
	if a.Args == nil {
		return false
	}
	if b, ok := a.Args[key].(bool); ok {
		return b
	}
	return false
}

// WithArg returns a copy of the action with an argument set.
func (a Action) WithArg(key string, value any) Action {
	args := make(map[string]any, len(a.Args)+1)
	for k, v := range a.Args {
		args[k] = v
	}
	args[key] = value
	a.Args = args
	return a
}
