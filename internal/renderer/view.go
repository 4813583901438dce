// Package renderer draws the review session to a tcell screen: the
// visible window of the buffer, the cursor, and a status line carrying
// the mode lighter and the latest lookup report.
package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/dshills/lineup/internal/dispatcher/handler"
	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
	"github.com/dshills/lineup/internal/review"
)

// View tracks the vertical scroll offset and renders frames.
type View struct {
	scroll int
}

// NewView creates a view scrolled to the top.
func NewView() *View {
	return &View{}
}

// Scroll returns the index of the first visible buffer line.
func (v *View) Scroll() int {
	return v.scroll
}

// Apply adjusts the scroll offset for a dispatch result. A center
// request puts the line in the middle of the text area.
func (v *View) Apply(update handler.ViewUpdate, height int) {
	if update.CenterLine == nil {
		return
	}
	v.scroll = centerScroll(*update.CenterLine, textHeight(height))
}

// EnsureVisible scrolls the minimum amount needed to bring a line
// into the text area.
func (v *View) EnsureVisible(line, height int) {
	rows := textHeight(height)
	if rows < 1 {
		return
	}
	if line < v.scroll {
		v.scroll = line
	}
	if line >= v.scroll+rows {
		v.scroll = line - rows + 1
	}
}

// textHeight is the screen height minus the status line.
func textHeight(height int) int {
	return height - 1
}

// centerScroll computes the scroll offset that centers a line in a
// text area of the given height.
func centerScroll(line, rows int) int {
	if rows < 1 {
		return line
	}
	scroll := line - rows/2
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}

// Render draws a full frame. Marked lines are drawn bold so the run
// structure is visible at a glance.
func (v *View) Render(screen tcell.Screen, buf *buffer.Buffer, cur cursor.Cursor, marker *review.Marker, lighter, report string) {
	screen.Clear()
	width, height := screen.Size()
	rows := textHeight(height)

	v.EnsureVisible(cur.Line(), height)

	plain := tcell.StyleDefault
	marked := tcell.StyleDefault.Bold(true)

	for row := 0; row < rows; row++ {
		line := v.scroll + row
		if line >= buf.LineCount() {
			break
		}
		text := buf.LineText(line)
		style := plain
		if marker != nil && marker.IsMarked(text) {
			style = marked
		}
		drawText(screen, 0, row, width, text, style)
	}

	v.renderStatus(screen, cur, lighter, report, width, height)

	screen.ShowCursor(cursorX(buf, cur), cur.Line()-v.scroll)
	screen.Show()
}

// renderStatus draws the bottom status line: lighter, cursor position
// and the latest report, truncated to the screen width.
func (v *View) renderStatus(screen tcell.Screen, cur cursor.Cursor, lighter, report string, width, height int) {
	if height < 1 {
		return
	}

	status := fmt.Sprintf(" %s  %d:%d ", lighter, cur.Line()+1, cur.Col())
	if report != "" {
		status += " " + report
	}

	style := tcell.StyleDefault.Reverse(true)
	x := drawText(screen, 0, height-1, width, status, style)
	for ; x < width; x++ {
		screen.SetContent(x, height-1, ' ', nil, style)
	}
}

// drawText draws a string clipped to maxWidth and returns the next
// free column.
func drawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxWidth {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// cursorX converts the cursor's byte column into a display column.
// Walks the line rune by rune so a column inside an encoded rune
// never slices the text mid-rune.
func cursorX(buf *buffer.Buffer, cur cursor.Cursor) int {
	text := buf.LineText(cur.Line())
	col := cur.Col()

	x := 0
	for i, r := range text {
		if i >= col {
			break
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}
