// Package keymap maps trigger keys to review actions.
package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/lineup/internal/input"
	"github.com/dshills/lineup/internal/input/key"
)

// Errors returned by keymap validation.
var (
	ErrEmptyAction   = errors.New("empty action")
	ErrDuplicateKey  = errors.New("duplicate key binding")
	ErrUnknownAction = errors.New("action not bound")
)

// Binding maps a single trigger key to an action.
type Binding struct {
	// Key is the trigger character.
	Key rune

	// Action is the action name dispatched for the key.
	Action string

	// Description documents the binding for help displays.
	Description string

	// Args are passed through to the dispatched action.
	Args map[string]any
}

// Keymap holds the ordered key bindings for a review session.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Source indicates where this keymap was defined.
	// Examples: "default", "user".
	Source string

	// Bindings are the key-to-action mappings, in order.
	Bindings []Binding
}

// New creates a new keymap with the given name.
func New(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(trigger rune, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{Key: trigger, Action: action})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	seen := make(map[rune]bool, len(k.Bindings))
	for i, b := range k.Bindings {
		if b.Action == "" {
			return fmt.Errorf("binding %d (%q): %w", i, b.Key, ErrEmptyAction)
		}
		if seen[b.Key] {
			return fmt.Errorf("binding %d (%q): %w", i, b.Key, ErrDuplicateKey)
		}
		seen[b.Key] = true
	}
	return nil
}

// Resolve maps a key event to an action. Only rune keys resolve;
// special keys are handled by the embedding harness.
func (k *Keymap) Resolve(ev key.Event) (input.Action, bool) {
	if ev.Key != key.KeyRune {
		return input.Action{}, false
	}

	for _, b := range k.Bindings {
		if b.Key == ev.Rune {
			return input.Action{
				Name: b.Action,
				Rune: ev.Rune,
				Args: b.Args,
			}, true
		}
	}
	return input.Action{}, false
}

// Rebind moves an existing action binding to a new trigger key.
// Returns ErrUnknownAction if no binding carries the action, and
// ErrDuplicateKey if the new key is already bound to another action.
func (k *Keymap) Rebind(action string, trigger rune) error {
	for _, b := range k.Bindings {
		if b.Key == trigger && b.Action != action {
			return fmt.Errorf("%q already bound to %s: %w", trigger, b.Action, ErrDuplicateKey)
		}
	}
	for i, b := range k.Bindings {
		if b.Action == action {
			k.Bindings[i].Key = trigger
			return nil
		}
	}
	return fmt.Errorf("%s: %w", action, ErrUnknownAction)
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	for i, b := range k.Bindings {
		clone.Bindings[i] = Binding{
			Key:         b.Key,
			Action:      b.Action,
			Description: b.Description,
		}
		if b.Args != nil {
			clone.Bindings[i].Args = make(map[string]any, len(b.Args))
			for name, v := range b.Args {
				clone.Bindings[i].Args[name] = v
			}
		}
	}
	return clone
}
