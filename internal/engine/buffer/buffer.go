package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange = errors.New("line out of range")
	ErrColOutOfRange  = errors.New("column out of range")
	ErrRangeInvalid   = errors.New("invalid range")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a line-oriented document. It provides the primary interface
// for reading and mutating the text under review.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
	trailingNL bool
}

// NewBuffer creates a new empty buffer with a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		trailingNL: true,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.setText(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	b := NewBuffer(opts...)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	b.setText(string(data))
	return b, nil
}

// setText replaces the buffer content, splitting into lines.
func (b *Buffer) setText(s string) {
	s = normalizeToLF(s)
	b.trailingNL = strings.HasSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	b.lines = strings.Split(s, "\n")
	b.revisionID = NewRevisionID()
}

// normalizeToLF converts all line endings to LF for internal storage.
// The buffer's configured LineEnding is reapplied on output.
func normalizeToLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// Read Operations

// Text returns the full buffer content as a string, using the
// buffer's line ending style.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	text := strings.Join(b.lines, b.lineEnding.Sequence())
	if b.trailingNL {
		text += b.lineEnding.Sequence()
	}
	return text
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a specific line (without newline).
// Returns an empty string for out-of-range lines.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of a specific line in bytes (without newline).
func (b *Buffer) LineLen(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// Write Operations

// InsertAt inserts text into a line at the given column.
// The text must not contain line breaks.
func (b *Buffer) InsertAt(line, col int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if line < 0 || line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	cur := b.lines[line]
	if col < 0 || col > len(cur) {
		return ErrColOutOfRange
	}

	b.lines[line] = cur[:col] + text + cur[col:]
	b.revisionID = NewRevisionID()
	return nil
}

// DeleteAt removes n bytes from a line starting at the given column.
func (b *Buffer) DeleteAt(line, col, n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if line < 0 || line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	cur := b.lines[line]
	if col < 0 || n < 0 || col+n > len(cur) {
		return ErrRangeInvalid
	}

	b.lines[line] = cur[:col] + cur[col+n:]
	b.revisionID = NewRevisionID()
	return nil
}

// ReplaceAt replaces n bytes of a line at the given column with new text.
// The text must not contain line breaks.
func (b *Buffer) ReplaceAt(line, col, n int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if line < 0 || line >= len(b.lines) {
		return ErrLineOutOfRange
	}
	cur := b.lines[line]
	if col < 0 || n < 0 || col+n > len(cur) {
		return ErrRangeInvalid
	}

	b.lines[line] = cur[:col] + text + cur[col+n:]
	b.revisionID = NewRevisionID()
	return nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the buffer's line ending style.
// Existing content is unaffected until the buffer is written out.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// WriteTo writes the buffer content to w using the buffer's line
// ending style. Implements io.WriterTo.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Text())
	return int64(n), err
}
