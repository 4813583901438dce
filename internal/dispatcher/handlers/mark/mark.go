// Package mark provides handlers for line marking and navigation actions.
package mark

import (
	"github.com/dshills/lineup/internal/dispatcher/execctx"
	"github.com/dshills/lineup/internal/dispatcher/handler"
	"github.com/dshills/lineup/internal/input"
)

// Action names for mark operations.
const (
	ActionToggle        = "mark.toggle"
	ActionAdvance       = "mark.advance"
	ActionAdvanceSearch = "mark.advanceSearch"
	ActionPrevLine      = "mark.prevLine"
	ActionNextUnmarked  = "mark.nextUnmarked"
	ActionJumpToItem    = "mark.jumpToItem"
)

// Handler implements namespace-based mark action handling.
//
// Every action in this namespace is guarded by the column-0
// precondition: invoked with the cursor mid-line, the keypress falls
// back to ordinary character insertion instead, so an in-progress
// edit is never corrupted by a mark operation.
type Handler struct{}

// NewHandler creates a new mark handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Namespace returns the mark namespace.
func (h *Handler) Namespace() string {
	return "mark"
}

// CanHandle returns true if this handler can process the action.
func (h *Handler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionToggle, ActionAdvance, ActionAdvanceSearch,
		ActionPrevLine, ActionNextUnmarked, ActionJumpToItem:
		return true
	}
	return false
}

// HandleAction processes a mark action.
func (h *Handler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if ctx.Buffer == nil {
		return handler.Error(execctx.ErrMissingBuffer)
	}
	if ctx.Cursors == nil {
		return handler.Error(execctx.ErrMissingCursors)
	}
	if ctx.Marker == nil {
		return handler.Error(execctx.ErrMissingMarker)
	}

	if !ctx.Cursors.Get().AtLineStart() {
		return h.selfInsert(action, ctx)
	}

	switch action.Name {
	case ActionToggle:
		return h.toggle(action, ctx)
	case ActionAdvance:
		return h.advance(ctx, false)
	case ActionAdvanceSearch:
		return h.advance(ctx, true)
	case ActionPrevLine:
		return h.prevLine(ctx)
	case ActionNextUnmarked:
		return h.nextUnmarked(ctx)
	case ActionJumpToItem:
		return h.jumpToItem(ctx)
	default:
		return handler.Errorf("unknown mark action: %s", action.Name)
	}
}

// selfInsert inserts the pressed character at the cursor, the
// defined fallback when the column-0 precondition does not hold.
func (h *Handler) selfInsert(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if action.Rune == 0 {
		return handler.NoOp()
	}

	cur := ctx.Cursors.Get()
	text := string(action.Rune)
	if err := ctx.Buffer.InsertAt(cur.Line(), cur.Col(), text); err != nil {
		return handler.Error(err)
	}
	ctx.Cursors.Set(cur.Right(len(text)))
	return handler.Success()
}

// toggle applies the mark toggle rule to the current line.
func (h *Handler) toggle(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	glyph := action.GetString("glyph")
	if glyph == "" {
		return handler.Errorf("mark.toggle: missing glyph argument")
	}

	cur, err := ctx.Marker.Toggle(ctx.Buffer, ctx.Cursors.Get(), glyph)
	if err != nil {
		return handler.Error(err)
	}
	ctx.Cursors.Set(cur)
	return handler.Success()
}

// advance moves to the next line, centers it, and marks it with the
// default glyph if unmarked. In searching mode a newly marked line
// triggers the favourites lookup for its item.
func (h *Handler) advance(ctx *execctx.ExecutionContext, searching bool) handler.Result {
	cur, newly, err := ctx.Marker.AdvanceAndMark(ctx.Buffer, ctx.Cursors.Get())
	if err != nil {
		return handler.Error(err)
	}
	ctx.Cursors.Set(cur)

	result := handler.Success().WithCenterLine(cur.Line())

	if !searching || !newly {
		return result
	}
	if ctx.Favourites == nil {
		return handler.Error(execctx.ErrMissingLookup)
	}

	item, ok := ctx.Marker.ItemAt(ctx.Buffer, cur)
	if !ok {
		return result
	}

	report := ctx.Favourites.Lookup(ctx.Ctx, item.Text)
	return result.WithReport(report.Text)
}

// prevLine moves the cursor up one line.
func (h *Handler) prevLine(ctx *execctx.ExecutionContext) handler.Result {
	cur := ctx.Cursors.Get()
	if cur.Line() == 0 {
		return handler.NoOp()
	}
	ctx.Cursors.Set(cur.Up())
	return handler.Success()
}

// nextUnmarked skips the contiguous marked run. Starting from an
// unmarked line is a no-op.
func (h *Handler) nextUnmarked(ctx *execctx.ExecutionContext) handler.Result {
	cur := ctx.Cursors.Get()
	moved := ctx.Marker.NextUnmarked(ctx.Buffer, cur)
	if moved.Equals(cur) {
		return handler.NoOp()
	}
	ctx.Cursors.Set(moved)
	return handler.Success().WithCenterLine(moved.Line())
}

// jumpToItem moves the cursor to the first item match on the line.
func (h *Handler) jumpToItem(ctx *execctx.ExecutionContext) handler.Result {
	cur := ctx.Cursors.Get()
	moved := ctx.Marker.JumpToItem(ctx.Buffer, cur)
	if moved.Equals(cur) {
		return handler.NoOp()
	}
	ctx.Cursors.Set(moved)
	return handler.Success()
}
