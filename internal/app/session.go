// Package app wires the review components into a running session. It
// owns the buffer under review, the dispatcher, the keymap and the
// lookup providers, and translates key events into dispatched actions.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/dshills/lineup/internal/config"
	"github.com/dshills/lineup/internal/dispatcher"
	"github.com/dshills/lineup/internal/dispatcher/execctx"
	"github.com/dshills/lineup/internal/dispatcher/handler"
	lookuphandler "github.com/dshills/lineup/internal/dispatcher/handlers/lookup"
	markhandler "github.com/dshills/lineup/internal/dispatcher/handlers/mark"
	"github.com/dshills/lineup/internal/engine/buffer"
	"github.com/dshills/lineup/internal/engine/cursor"
	"github.com/dshills/lineup/internal/event"
	"github.com/dshills/lineup/internal/input"
	"github.com/dshills/lineup/internal/input/key"
	"github.com/dshills/lineup/internal/input/keymap"
	"github.com/dshills/lineup/internal/lookup"
	"github.com/dshills/lineup/internal/review"
)

// ErrNoFile is returned by Save when no file is loaded.
var ErrNoFile = errors.New("no file loaded")

// Session is a single review session over one file. All methods are
// safe for concurrent use; key handling itself is strictly sequential.
type Session struct {
	mu sync.RWMutex

	cfg      config.Config
	alphabet review.Alphabet

	buf     *buffer.Buffer
	cursors *cursor.Holder
	marker  *review.Marker
	keymap  *keymap.Keymap
	disp    *dispatcher.Dispatcher
	bus     *event.Bus

	path       string
	searching  bool
	lastReport string
}

// New builds a session from a validated configuration. The file is
// loaded separately with LoadFile.
func New(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	alphabet, err := cfg.Alphabet()
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		alphabet:  alphabet,
		cursors:   cursor.NewHolder(cursor.New(0, 0)),
		marker:    review.NewMarker(alphabet),
		bus:       event.NewBus(),
		searching: cfg.Searching,
		buf:       buffer.NewBuffer(),
	}

	if err := s.buildKeymap(); err != nil {
		return nil, err
	}
	s.buildDispatcher()

	return s, nil
}

// buildKeymap builds the default keymap and applies key overrides.
func (s *Session) buildKeymap() error {
	k := keymap.Default(s.alphabet)
	for action, trigger := range s.cfg.Keys {
		if err := k.Rebind(action, trigger); err != nil {
			return fmt.Errorf("key override: %w", err)
		}
	}
	if err := k.Validate(); err != nil {
		return err
	}
	s.keymap = k
	return nil
}

// buildDispatcher wires handlers, lookup providers and hooks.
func (s *Session) buildDispatcher() {
	client := &http.Client{Timeout: s.cfg.LookupTimeout}

	ddg := lookup.NewDuckDuckGo(
		lookup.WithDuckDuckGoEndpoint(s.cfg.AbstractAEndpoint),
		lookup.WithDuckDuckGoClient(client),
	)
	wiki := lookup.NewWikipedia(
		lookup.WithWikipediaEndpoint(s.cfg.AbstractBEndpoint),
		lookup.WithWikipediaClient(client),
	)
	browser := lookup.NewBrowser(lookup.WithSearchURL(s.cfg.SearchURL))
	dict := lookup.NewDictionary(
		lookup.WithDictionaryURL(s.cfg.DictionaryURL),
		lookup.WithDictionaryBrowser(browser),
	)

	d := dispatcher.New()
	d.RegisterNamespace(markhandler.NewHandler())
	d.RegisterNamespace(lookuphandler.NewHandler())

	d.SetCursors(s.cursors)
	d.SetMarker(s.marker)
	d.SetBuffer(s.buf)
	d.SetFavourites(lookup.NewChain(ddg, wiki, browser))
	d.SetProvider(execctx.ProviderAbstractA, ddg)
	d.SetProvider(execctx.ProviderAbstractB, wiki)
	d.SetProvider(execctx.ProviderBrowser, browser)
	d.SetProvider(execctx.ProviderDictionary, dict)
	d.SetBaseContext(context.Background())

	d.RegisterPostHook(dispatcher.PostDispatchFunc(s.afterDispatch))

	s.disp = d
}

// afterDispatch records lookup reports and publishes session events.
// Only results flagged as reports touch the report line, so an
// advance that skipped its lookup leaves the previous report visible.
func (s *Session) afterDispatch(action *input.Action, _ *execctx.ExecutionContext, result *handler.Result) {
	if result.IsError() {
		return
	}

	if result.Reported {
		s.setLastReport(result.Message)
		s.bus.Publish(event.New(event.TopicLookupReported, event.LookupPayload{
			Text: result.Message,
		}, "session"))
	}

	if result.IsOK() {
		switch action.Name {
		case keymap.ActionMarkToggle, keymap.ActionMarkAdvance, keymap.ActionMarkAdvanceSearch:
			cur := s.cursors.Get()
			glyph, _ := s.alphabet.MarkOf(s.buf.LineText(cur.Line()))
			s.bus.Publish(event.New(event.TopicLineMarked, event.MarkPayload{
				Line:  cur.Line(),
				Glyph: glyph,
			}, "session"))
		}
	}
}

// LoadFile reads a file into the session's buffer and resets the
// cursor to the first line.
func (s *Session) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf, err := buffer.NewBufferFromReader(f)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.path = path
	s.buf = buf
	s.mu.Unlock()

	s.cursors.Set(cursor.New(0, 0))
	s.disp.SetBuffer(buf)

	s.bus.Publish(event.New(event.TopicSessionStarted, event.SessionPayload{
		Path:      path,
		LineCount: buf.LineCount(),
	}, "session"))
	return nil
}

// LoadString loads text directly, without a backing file.
func (s *Session) LoadString(text string) {
	buf := buffer.NewBufferFromString(text)

	s.mu.Lock()
	s.path = ""
	s.buf = buf
	s.mu.Unlock()

	s.cursors.Set(cursor.New(0, 0))
	s.disp.SetBuffer(buf)
}

// HandleKey translates a key event into an action and dispatches it.
// The bool reports whether the event was consumed.
func (s *Session) HandleKey(ev key.Event) (handler.Result, bool) {
	switch ev.Key {
	case key.KeyUp:
		return s.moveCursor(func(c cursor.Cursor) cursor.Cursor { return c.Up() }), true
	case key.KeyDown:
		return s.moveCursor(func(c cursor.Cursor) cursor.Cursor { return c.Down() }), true
	case key.KeyLeft:
		return s.moveRune(-1), true
	case key.KeyRight:
		return s.moveRune(1), true
	case key.KeyEnter:
		return s.moveCursor(func(c cursor.Cursor) cursor.Cursor { return c.Down().MoveToCol(0) }), true
	}

	action, ok := s.keymap.Resolve(ev)
	if !ok {
		if ev.Key == key.KeyRune {
			return s.insertRune(ev.Rune), true
		}
		return handler.NoOp(), false
	}

	// Searching mode upgrades the plain advance to advance-and-search.
	if action.Name == keymap.ActionMarkAdvance && s.Searching() {
		action.Name = keymap.ActionMarkAdvanceSearch
	}

	return s.disp.Dispatch(action), true
}

// moveRune moves the cursor one rune left or right on the current
// line. Movement is by decoded rune, never by byte, so the cursor
// always sits on a rune boundary and self-insert cannot split an
// encoded character.
func (s *Session) moveRune(dir int) handler.Result {
	s.mu.RLock()
	buf := s.buf
	s.mu.RUnlock()

	cur := s.cursors.Get()
	text := buf.LineText(cur.Line())
	col := cur.Col()
	if col > len(text) {
		col = len(text)
	}

	var next int
	if dir < 0 {
		if col == 0 {
			return handler.NoOp()
		}
		_, size := utf8.DecodeLastRuneInString(text[:col])
		next = col - size
	} else {
		if col >= len(text) {
			return handler.NoOp()
		}
		_, size := utf8.DecodeRuneInString(text[col:])
		next = col + size
	}

	s.cursors.Set(cur.MoveToCol(next))
	return handler.Success()
}

// moveCursor applies a cursor movement, clamped to the buffer.
func (s *Session) moveCursor(move func(cursor.Cursor) cursor.Cursor) handler.Result {
	s.mu.RLock()
	buf := s.buf
	s.mu.RUnlock()

	cur := s.cursors.Get()
	moved := move(cur).Clamp(buf.LineCount(), buf.LineLen)
	if moved.Equals(cur) {
		return handler.NoOp()
	}
	s.cursors.Set(moved)
	return handler.Success()
}

// insertRune inserts an unbound character at the cursor.
func (s *Session) insertRune(r rune) handler.Result {
	s.mu.RLock()
	buf := s.buf
	s.mu.RUnlock()

	cur := s.cursors.Get()
	text := string(r)
	if err := buf.InsertAt(cur.Line(), cur.Col(), text); err != nil {
		return handler.Error(err)
	}
	s.cursors.Set(cur.Right(len(text)))
	return handler.Success()
}

// Save writes the buffer back to the loaded file.
func (s *Session) Save() error {
	s.mu.RLock()
	path := s.path
	buf := s.buf
	s.mu.RUnlock()

	if path == "" {
		return ErrNoFile
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close ends the session.
func (s *Session) Close() {
	s.mu.RLock()
	path := s.path
	count := s.buf.LineCount()
	s.mu.RUnlock()

	s.bus.Publish(event.New(event.TopicSessionEnded, event.SessionPayload{
		Path:      path,
		LineCount: count,
	}, "session"))
}

// Searching reports whether searching mode is active.
func (s *Session) Searching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searching
}

// SetSearching toggles searching mode at runtime.
func (s *Session) SetSearching(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searching = enable
}

// Lighter returns the short mode indicator for the status line.
func (s *Session) Lighter() string {
	if s.Searching() {
		return "Mark/s"
	}
	return "Mark"
}

// LastReport returns the text of the most recent lookup report.
func (s *Session) LastReport() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport
}

func (s *Session) setLastReport(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastReport = text
}

// Buffer returns the buffer under review.
func (s *Session) Buffer() *buffer.Buffer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() cursor.Cursor {
	return s.cursors.Get()
}

// Path returns the loaded file path, empty for in-memory sessions.
func (s *Session) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Bus returns the session's event bus for subscriptions.
func (s *Session) Bus() *event.Bus {
	return s.bus
}

// Keymap returns the active keymap.
func (s *Session) Keymap() *keymap.Keymap {
	return s.keymap
}

// Marker returns the session's line marker.
func (s *Session) Marker() *review.Marker {
	return s.marker
}
