package review

import (
	"errors"

	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
)

// ErrUnknownGlyph is returned when a toggle is requested for a glyph
// outside the marker's alphabet.
var ErrUnknownGlyph = errors.New("glyph not in alphabet")

// Marker implements the line marking and navigation operations over a
// buffer. Operations that mutate the buffer require the cursor to be
// at column 0; callers enforce the precondition and fall back to
// literal insertion when it does not hold.
type Marker struct {
	alphabet Alphabet
}

// NewMarker creates a marker for the given alphabet.
func NewMarker(a Alphabet) *Marker {
	return &Marker{alphabet: a}
}

// Alphabet returns the marker's alphabet.
func (m *Marker) Alphabet() Alphabet {
	return m.alphabet
}

// IsMarked returns true if the line begins with an alphabet glyph.
func (m *Marker) IsMarked(line string) bool {
	return m.alphabet.IsMarked(line)
}

// Toggle applies the toggle rule to the cursor's line:
//
//   - line already begins with glyph: the glyph is removed
//   - line begins with a different alphabet glyph: it is replaced
//   - line is unmarked: the glyph is inserted at column 0
//
// Only the line's leading bytes are touched. The returned cursor is
// at column 0 of the same line.
func (m *Marker) Toggle(buf *buffer.Buffer, cur cursor.Cursor, glyph string) (cursor.Cursor, error) {
	if !m.alphabet.Contains(glyph) {
		return cur, ErrUnknownGlyph
	}

	line := cur.Line()
	text := buf.LineText(line)
	home := cur.MoveToCol(0)

	existing, marked := m.alphabet.MarkOf(text)
	switch {
	case marked && existing == glyph:
		if err := buf.DeleteAt(line, 0, len(existing)); err != nil {
			return cur, err
		}
	case marked:
		if err := buf.ReplaceAt(line, 0, len(existing), glyph); err != nil {
			return cur, err
		}
	default:
		if err := buf.InsertAt(line, 0, glyph); err != nil {
			return cur, err
		}
	}

	return home, nil
}

// AdvanceAndMark moves the cursor to the next line and applies the
// alphabet's default glyph if that line is not already marked. It
// never double-marks and never overwrites an existing mark. The
// returned bool reports whether the line was newly marked; searching
// mode uses it to decide whether to trigger a lookup.
func (m *Marker) AdvanceAndMark(buf *buffer.Buffer, cur cursor.Cursor) (cursor.Cursor, bool, error) {
	next := cur.Down()
	if last := buf.LineCount() - 1; next.Line() > last {
		next = next.MoveToLine(last)
	}

	if m.IsMarked(buf.LineText(next.Line())) {
		return next, false, nil
	}

	if err := buf.InsertAt(next.Line(), 0, m.alphabet.Default()); err != nil {
		return next, false, err
	}
	return next, true, nil
}

// NextUnmarked skips forward over the contiguous run of marked lines
// starting at the cursor and lands on the last marked line of the
// run, immediately before the first unmarked line (or end of buffer).
// If the starting line is already unmarked the cursor does not move.
func (m *Marker) NextUnmarked(buf *buffer.Buffer, cur cursor.Cursor) cursor.Cursor {
	if !m.IsMarked(buf.LineText(cur.Line())) {
		return cur
	}

	line := cur.Line()
	count := buf.LineCount()
	for line < count && m.IsMarked(buf.LineText(line)) {
		line++
	}

	return cur.MoveToLine(line - 1)
}

// JumpToItem moves the cursor to the start of the first item match on
// the current line. No-op when the line has no item.
func (m *Marker) JumpToItem(buf *buffer.Buffer, cur cursor.Cursor) cursor.Cursor {
	item, ok := ExtractItem(buf.LineText(cur.Line()), 0)
	if !ok {
		return cur
	}
	return cur.MoveToCol(item.Col)
}

// ItemAt returns the item on the cursor's line at or after the
// cursor's column.
func (m *Marker) ItemAt(buf *buffer.Buffer, cur cursor.Cursor) (Item, bool) {
	return ExtractItem(buf.LineText(cur.Line()), cur.Col())
}
