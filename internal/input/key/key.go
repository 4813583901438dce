// Package key defines keyboard events for the review session.
package key

import "fmt"

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Control chords used by the harness
	KeyCtrlQ
	KeyCtrlS

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlQ:
		return "Ctrl+Q"
	case KeyCtrlS:
		return "Ctrl+S"
	case KeyRune:
		return "Rune"
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// Event is a single keypress.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune holds the character for KeyRune events.
	Rune rune
}

// RuneEvent creates a character key event.
func RuneEvent(r rune) Event {
	return Event{Key: KeyRune, Rune: r}
}

// String returns a human-readable representation of the event.
func (e Event) String() string {
	if e.Key == KeyRune {
		return fmt.Sprintf("%q", e.Rune)
	}
	return e.Key.String()
}
