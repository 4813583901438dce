package renderer

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lineup/internal/dispatcher/handler"
	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
	"github.com/dshills/lineup/internal/input/key"
	"github.com/dshills/lineup/internal/review"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText reads the primary runes of a screen row.
func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestCenterScroll(t *testing.T) {
	tests := []struct {
		name string
		line int
		rows int
		want int
	}{
		{"line near top", 2, 10, 0},
		{"line below window", 50, 10, 45},
		{"exact center", 5, 10, 0},
		{"single row", 7, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := centerScroll(tt.line, tt.rows); got != tt.want {
				t.Errorf("centerScroll(%d, %d) = %d, want %d", tt.line, tt.rows, got, tt.want)
			}
		})
	}
}

func TestViewApplyCenters(t *testing.T) {
	v := NewView()
	line := 40
	v.Apply(handler.ViewUpdate{CenterLine: &line}, 11) // 10 text rows

	if got := v.Scroll(); got != 35 {
		t.Errorf("Scroll() = %d, want 35", got)
	}

	// No center request leaves the scroll alone.
	v.Apply(handler.ViewUpdate{}, 11)
	if got := v.Scroll(); got != 35 {
		t.Errorf("Scroll() after empty update = %d, want 35", got)
	}
}

func TestViewEnsureVisible(t *testing.T) {
	v := NewView()

	v.EnsureVisible(30, 11)
	if got := v.Scroll(); got != 21 {
		t.Errorf("Scroll() = %d, want 21", got)
	}

	v.EnsureVisible(5, 11)
	if got := v.Scroll(); got != 5 {
		t.Errorf("Scroll() after scrolling up = %d, want 5", got)
	}
}

func TestViewRender(t *testing.T) {
	screen := newSimScreen(t, 40, 5)

	buf := buffer.NewBufferFromString("*alpha\nbeta\ngamma\n")
	marker := review.NewMarker(review.DefaultAlphabet())

	v := NewView()
	v.Render(screen, buf, cursor.New(1, 0), marker, "Mark", "a report")

	if got := rowText(screen, 0, 40); got != "*alpha" {
		t.Errorf("row 0 = %q, want %q", got, "*alpha")
	}
	if got := rowText(screen, 1, 40); got != "beta" {
		t.Errorf("row 1 = %q, want %q", got, "beta")
	}

	status := rowText(screen, 4, 40)
	if !strings.Contains(status, "Mark") || !strings.Contains(status, "a report") {
		t.Errorf("status = %q, want lighter and report", status)
	}

	// Marked line is bold, unmarked line is not.
	_, _, style, _ := screen.GetContent(0, 0)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold == 0 {
		t.Error("marked line should be bold")
	}
	_, _, style, _ = screen.GetContent(0, 1)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrBold != 0 {
		t.Error("unmarked line should not be bold")
	}
}

func TestViewRenderScrollsToCursor(t *testing.T) {
	screen := newSimScreen(t, 20, 4) // 3 text rows

	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	buf := buffer.NewBufferFromString(strings.Join(lines, "\n"))
	marker := review.NewMarker(review.DefaultAlphabet())

	v := NewView()
	v.Render(screen, buf, cursor.New(8, 0), marker, "Mark", "")

	if got := v.Scroll(); got != 6 {
		t.Errorf("Scroll() = %d, want 6", got)
	}
}

func TestCursorXMultiByte(t *testing.T) {
	buf := buffer.NewBufferFromString("héllo\n日本\n")

	tests := []struct {
		name string
		cur  cursor.Cursor
		want int
	}{
		{"line start", cursor.New(0, 0), 0},
		{"after multi-byte rune", cursor.New(0, 3), 2}, // h + é
		{"inside a rune", cursor.New(0, 2), 2},         // snaps to the next rune boundary
		{"after wide rune", cursor.New(1, 3), 2},       // 日 is 3 bytes, 2 cells
		{"past line end", cursor.New(0, 99), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cursorX(buf, tt.cur); got != tt.want {
				t.Errorf("cursorX(%v) = %d, want %d", tt.cur, got, tt.want)
			}
		})
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), key.RuneEvent('m')},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), key.RuneEvent(' ')},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), key.Event{Key: key.KeyUp}},
		{"ctrl-q", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModNone), key.Event{Key: key.KeyCtrlQ}},
		{"ctrl-s", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone), key.Event{Key: key.KeyCtrlS}},
		{"unknown", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), key.Event{Key: key.KeyNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKey(tt.ev); got != tt.want {
				t.Errorf("TranslateKey() = %v, want %v", got, tt.want)
			}
		})
	}
}
