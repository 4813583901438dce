// Package cursor provides the cursor position type for review sessions.
package cursor

import "fmt"

// Cursor represents a position in the buffer as a line and a byte
// column within that line. Cursor is an immutable value type.
type Cursor struct {
	line int
	col  int
}

// New creates a cursor at the given line and column.
// Negative values are clamped to zero.
func New(line, col int) Cursor {
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return Cursor{line: line, col: col}
}

// Line returns the cursor's line index.
func (c Cursor) Line() int {
	return c.line
}

// Col returns the cursor's byte column within the line.
func (c Cursor) Col() int {
	return c.col
}

// AtLineStart returns true if the cursor is at column 0.
// Mark operations are only valid at the start of a line.
func (c Cursor) AtLineStart() bool {
	return c.col == 0
}

// MoveToLine returns a new cursor on the given line at column 0.
func (c Cursor) MoveToLine(line int) Cursor {
	return New(line, 0)
}

// MoveToCol returns a new cursor at the given column on the same line.
func (c Cursor) MoveToCol(col int) Cursor {
	return New(c.line, col)
}

// Down returns a new cursor one line down at column 0.
func (c Cursor) Down() Cursor {
	return New(c.line+1, 0)
}

// Up returns a new cursor one line up at column 0.
func (c Cursor) Up() Cursor {
	return New(c.line-1, 0)
}

// Right returns a new cursor shifted right by n bytes.
func (c Cursor) Right(n int) Cursor {
	return New(c.line, c.col+n)
}

// Clamp returns a cursor clamped to the valid range of a document
// with lineCount lines, where lineLen reports the length of a line.
func (c Cursor) Clamp(lineCount int, lineLen func(line int) int) Cursor {
	line := c.line
	if line >= lineCount {
		line = lineCount - 1
	}
	if line < 0 {
		line = 0
	}

	col := c.col
	if max := lineLen(line); col > max {
		col = max
	}

	return New(line, col)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.line == other.line && c.col == other.col
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d:%d)", c.line, c.col)
}
