package review

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by alphabet validation.
var (
	ErrEmptyAlphabet  = errors.New("alphabet has no entries")
	ErrEmptyGlyph     = errors.New("empty glyph")
	ErrDuplicateKey   = errors.New("duplicate trigger key")
	ErrDuplicateGlyph = errors.New("duplicate glyph")
	ErrGlyphPrefix    = errors.New("glyph is a prefix of another glyph")
	ErrGlyphLineBreak = errors.New("glyph contains a line break")
)

// Entry binds a single trigger key to a mark glyph.
type Entry struct {
	// Key is the keyboard character that toggles this mark.
	Key rune

	// Glyph is the short string placed at the start of a marked line.
	Glyph string
}

// Alphabet is the ordered set of key-to-glyph bindings. The first
// entry's glyph is the default mark used by advance operations.
// At most one glyph from the alphabet may prefix a line at any time.
type Alphabet struct {
	entries []Entry
}

// NewAlphabet creates a validated alphabet from the given entries.
// Trigger keys and glyphs must be unique, glyphs must be non-empty,
// and no glyph may be a prefix of another (prefix glyphs would make
// mark detection ambiguous).
func NewAlphabet(entries ...Entry) (Alphabet, error) {
	if len(entries) == 0 {
		return Alphabet{}, ErrEmptyAlphabet
	}

	keys := make(map[rune]bool, len(entries))
	for i, e := range entries {
		if e.Glyph == "" {
			return Alphabet{}, fmt.Errorf("entry %d: %w", i, ErrEmptyGlyph)
		}
		if strings.ContainsAny(e.Glyph, "\r\n") {
			return Alphabet{}, fmt.Errorf("entry %d (%q): %w", i, e.Glyph, ErrGlyphLineBreak)
		}
		if keys[e.Key] {
			return Alphabet{}, fmt.Errorf("entry %d (%q): %w", i, e.Key, ErrDuplicateKey)
		}
		keys[e.Key] = true

		for j, prev := range entries[:i] {
			if prev.Glyph == e.Glyph {
				return Alphabet{}, fmt.Errorf("entries %d and %d (%q): %w", j, i, e.Glyph, ErrDuplicateGlyph)
			}
			if strings.HasPrefix(e.Glyph, prev.Glyph) || strings.HasPrefix(prev.Glyph, e.Glyph) {
				return Alphabet{}, fmt.Errorf("entries %d and %d: %w", j, i, ErrGlyphPrefix)
			}
		}
	}

	a := Alphabet{entries: make([]Entry, len(entries))}
	copy(a.entries, entries)
	return a, nil
}

// DefaultAlphabet returns the built-in alphabet: '*' for reviewed
// (the default mark), '?' for unsure, '!' for flagged.
func DefaultAlphabet() Alphabet {
	a, err := NewAlphabet(
		Entry{Key: 'm', Glyph: "*"},
		Entry{Key: 'u', Glyph: "?"},
		Entry{Key: 'x', Glyph: "!"},
	)
	if err != nil {
		panic(err) // built-in entries are always valid
	}
	return a
}

// Entries returns a copy of the alphabet's entries in order.
func (a Alphabet) Entries() []Entry {
	entries := make([]Entry, len(a.entries))
	copy(entries, a.entries)
	return entries
}

// Len returns the number of entries.
func (a Alphabet) Len() int {
	return len(a.entries)
}

// Default returns the glyph of the first entry, used by
// advance-and-mark operations.
func (a Alphabet) Default() string {
	if len(a.entries) == 0 {
		return ""
	}
	return a.entries[0].Glyph
}

// GlyphFor returns the glyph bound to a trigger key.
func (a Alphabet) GlyphFor(key rune) (string, bool) {
	for _, e := range a.entries {
		if e.Key == key {
			return e.Glyph, true
		}
	}
	return "", false
}

// IsMarked returns true if the line begins with a glyph from the
// alphabet. An empty line is never marked.
func (a Alphabet) IsMarked(line string) bool {
	_, ok := a.MarkOf(line)
	return ok
}

// MarkOf returns the alphabet glyph that prefixes the line, if any.
func (a Alphabet) MarkOf(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	for _, e := range a.entries {
		if strings.HasPrefix(line, e.Glyph) {
			return e.Glyph, true
		}
	}
	return "", false
}

// Contains returns true if the glyph belongs to the alphabet.
func (a Alphabet) Contains(glyph string) bool {
	for _, e := range a.entries {
		if e.Glyph == glyph {
			return true
		}
	}
	return false
}
