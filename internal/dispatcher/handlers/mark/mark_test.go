package mark

import (
	"context"
	"testing"

	"github.com/dshills/lineup/internal/dispatcher/execctx"
	"github.com/dshills/lineup/internal/dispatcher/handler"
	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
	"github.com/dshills/lineup/internal/input"
	"github.com/dshills/lineup/internal/lookup"
	"github.com/dshills/lineup/internal/review"
)

// fixedStrategy returns a constant lookup result.
type fixedStrategy struct {
	text   string
	called int
}

func (f *fixedStrategy) Name() string { return "fixed" }

func (f *fixedStrategy) Lookup(ctx context.Context, query string) (string, error) {
	f.called++
	return f.text, nil
}

func testContext(t *testing.T, text string, cur cursor.Cursor) *execctx.ExecutionContext {
	t.Helper()

	alphabet, err := review.NewAlphabet(
		review.Entry{Key: '#', Glyph: "#"},
		review.Entry{Key: '?', Glyph: "?"},
	)
	if err != nil {
		t.Fatalf("alphabet: %v", err)
	}

	ctx := execctx.New()
	ctx.Buffer = buffer.NewBufferFromString(text)
	ctx.Cursors = cursor.NewHolder(cur)
	ctx.Marker = review.NewMarker(alphabet)
	ctx.Favourites = lookup.NewChain()
	return ctx
}

func TestToggleAtLineStart(t *testing.T) {
	ctx := testContext(t, "item one\n", cursor.New(0, 0))
	h := NewHandler()

	action := input.Action{Name: ActionToggle, Rune: '#', Args: map[string]any{"glyph": "#"}}
	result := h.HandleAction(action, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v: %v", result.Status, result.Error)
	}
	if got := ctx.Buffer.LineText(0); got != "#item one" {
		t.Errorf("expected #item one, got %q", got)
	}
	if !ctx.Cursors.Get().AtLineStart() {
		t.Error("cursor should be at column 0")
	}
}

// With the cursor mid-line the keypress self-inserts instead of
// touching the line's leading mark.
func TestToggleMidLineSelfInserts(t *testing.T) {
	ctx := testContext(t, "#item one\n", cursor.New(0, 3))
	h := NewHandler()

	action := input.Action{Name: ActionToggle, Rune: '#', Args: map[string]any{"glyph": "#"}}
	result := h.HandleAction(action, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v: %v", result.Status, result.Error)
	}
	if got := ctx.Buffer.LineText(0); got != "#it#em one" {
		t.Errorf("expected literal insertion at col 3, got %q", got)
	}
	if got := ctx.Cursors.Get().Col(); got != 4 {
		t.Errorf("expected cursor col 4, got %d", got)
	}
}

func TestToggleMissingGlyph(t *testing.T) {
	ctx := testContext(t, "item\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionToggle, Rune: '#'}, ctx)

	if !result.IsError() {
		t.Errorf("expected error for missing glyph, got %v", result.Status)
	}
}

func TestAdvanceMarksAndCenters(t *testing.T) {
	ctx := testContext(t, "#done\nnext item\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionAdvance, Rune: ' '}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v: %v", result.Status, result.Error)
	}
	if got := ctx.Buffer.LineText(1); got != "#next item" {
		t.Errorf("expected default mark, got %q", got)
	}
	if result.ViewUpdate.CenterLine == nil || *result.ViewUpdate.CenterLine != 1 {
		t.Error("advance should request centering on the new line")
	}
}

func TestAdvanceNeverDoubleMarks(t *testing.T) {
	ctx := testContext(t, "#done\n?already\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionAdvance, Rune: ' '}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v: %v", result.Status, result.Error)
	}
	if got := ctx.Buffer.LineText(1); got != "?already" {
		t.Errorf("existing mark must be preserved, got %q", got)
	}
}

func TestAdvanceSearchLooksUpNewlyMarked(t *testing.T) {
	ctx := testContext(t, "#done\nNext Item\n", cursor.New(0, 0))
	strategy := &fixedStrategy{text: "an abstract"}
	ctx.Favourites = lookup.NewChain(strategy)
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionAdvanceSearch, Rune: 's'}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v: %v", result.Status, result.Error)
	}
	if strategy.called != 1 {
		t.Errorf("expected one lookup, got %d", strategy.called)
	}
	if result.Message != "an abstract" {
		t.Errorf("expected lookup report, got %q", result.Message)
	}
}

func TestAdvanceSearchSkipsAlreadyMarked(t *testing.T) {
	ctx := testContext(t, "#done\n#already\n", cursor.New(0, 0))
	strategy := &fixedStrategy{text: "unused"}
	ctx.Favourites = lookup.NewChain(strategy)
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionAdvanceSearch, Rune: 's'}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v: %v", result.Status, result.Error)
	}
	if strategy.called != 0 {
		t.Error("already-marked line should not trigger a search")
	}
}

func TestPrevLine(t *testing.T) {
	ctx := testContext(t, "a\nb\n", cursor.New(1, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionPrevLine, Rune: 'p'}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v", result.Status)
	}
	if got := ctx.Cursors.Get().Line(); got != 0 {
		t.Errorf("expected line 0, got %d", got)
	}
}

func TestPrevLineAtTop(t *testing.T) {
	ctx := testContext(t, "a\nb\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionPrevLine, Rune: 'p'}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected no-op at top, got %v", result.Status)
	}
}

func TestNextUnmarkedRun(t *testing.T) {
	ctx := testContext(t, "#a\n#b\nc\n#d\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionNextUnmarked, Rune: 'n'}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v", result.Status)
	}
	if got := ctx.Cursors.Get().Line(); got != 1 {
		t.Errorf("expected line 1, got %d", got)
	}
}

func TestNextUnmarkedFromUnmarkedIsNoOp(t *testing.T) {
	ctx := testContext(t, "a\n#b\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionNextUnmarked, Rune: 'n'}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected no-op, got %v", result.Status)
	}
	if got := ctx.Cursors.Get().Line(); got != 0 {
		t.Errorf("cursor should not move, got line %d", got)
	}
}

func TestJumpToItem(t *testing.T) {
	ctx := testContext(t, "#Check this Entry.\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionJumpToItem, Rune: 'e'}, ctx)

	if !result.IsOK() {
		t.Fatalf("expected ok, got %v", result.Status)
	}
	if got := ctx.Cursors.Get().Col(); got != 1 {
		t.Errorf("expected col 1, got %d", got)
	}
}

func TestJumpToItemNoMatch(t *testing.T) {
	ctx := testContext(t, "12345\n", cursor.New(0, 0))
	h := NewHandler()

	result := h.HandleAction(input.Action{Name: ActionJumpToItem, Rune: 'e'}, ctx)

	if result.Status != handler.StatusNoOp {
		t.Errorf("expected no-op, got %v", result.Status)
	}
}

func TestMissingSubsystems(t *testing.T) {
	h := NewHandler()
	ctx := execctx.New()

	result := h.HandleAction(input.Action{Name: ActionAdvance}, ctx)

	if !result.IsError() {
		t.Errorf("expected error with empty context, got %v", result.Status)
	}
}
