package keymap

import (
	"errors"
	"testing"

	"github.com/dshills/lineup/internal/input/key"
	"github.com/dshills/lineup/internal/review"
)

func TestValidate(t *testing.T) {
	k := New("test").
		Add('a', "mark.toggle").
		Add('b', "mark.advance")

	if err := k.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateEmptyAction(t *testing.T) {
	k := New("test").Add('a', "")

	if err := k.Validate(); !errors.Is(err, ErrEmptyAction) {
		t.Errorf("expected ErrEmptyAction, got %v", err)
	}
}

func TestValidateDuplicateKey(t *testing.T) {
	k := New("test").
		Add('a', "mark.toggle").
		Add('a', "mark.advance")

	if err := k.Validate(); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	k := New("test").AddBinding(Binding{
		Key:    'm',
		Action: "mark.toggle",
		Args:   map[string]any{"glyph": "#"},
	})

	action, ok := k.Resolve(key.RuneEvent('m'))
	if !ok {
		t.Fatal("expected binding to resolve")
	}
	if action.Name != "mark.toggle" {
		t.Errorf("expected mark.toggle, got %q", action.Name)
	}
	if action.Rune != 'm' {
		t.Errorf("expected rune m, got %q", action.Rune)
	}
	if action.GetString("glyph") != "#" {
		t.Errorf("expected glyph #, got %q", action.GetString("glyph"))
	}
}

func TestResolveUnbound(t *testing.T) {
	k := New("test").Add('a', "mark.toggle")

	if _, ok := k.Resolve(key.RuneEvent('z')); ok {
		t.Error("unbound key should not resolve")
	}
}

func TestResolveSpecialKey(t *testing.T) {
	k := New("test").Add('a', "mark.toggle")

	if _, ok := k.Resolve(key.Event{Key: key.KeyEnter}); ok {
		t.Error("special keys should not resolve through the keymap")
	}
}

func TestRebind(t *testing.T) {
	k := New("test").
		Add('a', "mark.toggle").
		Add('b', "mark.advance")

	if err := k.Rebind("mark.advance", 'c'); err != nil {
		t.Fatalf("rebind: %v", err)
	}

	if _, ok := k.Resolve(key.RuneEvent('b')); ok {
		t.Error("old key should be unbound")
	}
	if action, ok := k.Resolve(key.RuneEvent('c')); !ok || action.Name != "mark.advance" {
		t.Errorf("expected mark.advance on c, got %v %v", action, ok)
	}
}

func TestRebindConflicts(t *testing.T) {
	k := New("test").
		Add('a', "mark.toggle").
		Add('b', "mark.advance")

	if err := k.Rebind("mark.advance", 'a'); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	if err := k.Rebind("missing.action", 'z'); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestDefaultKeymap(t *testing.T) {
	k := Default(review.DefaultAlphabet())

	if err := k.Validate(); err != nil {
		t.Fatalf("default keymap must validate: %v", err)
	}

	// Alphabet keys bind toggle with the glyph argument.
	action, ok := k.Resolve(key.RuneEvent('m'))
	if !ok || action.Name != ActionMarkToggle {
		t.Fatalf("expected %s on m, got %v %v", ActionMarkToggle, action, ok)
	}
	if action.GetString("glyph") != "*" {
		t.Errorf("expected glyph *, got %q", action.GetString("glyph"))
	}

	// Fixed action keys.
	fixed := map[rune]string{
		' ': ActionMarkAdvance,
		's': ActionMarkAdvanceSearch,
		'p': ActionMarkPrevLine,
		'n': ActionMarkNextUnmarked,
		'e': ActionMarkJumpToItem,
		'f': ActionLookupFavourites,
		'a': ActionLookupAbstractA,
		'w': ActionLookupAbstractB,
		'b': ActionLookupBrowser,
		'd': ActionLookupDictionary,
	}
	for trigger, want := range fixed {
		action, ok := k.Resolve(key.RuneEvent(trigger))
		if !ok || action.Name != want {
			t.Errorf("expected %s on %q, got %v %v", want, trigger, action, ok)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	k := New("test").AddBinding(Binding{
		Key:    'a',
		Action: "mark.toggle",
		Args:   map[string]any{"glyph": "#"},
	})

	clone := k.Clone()
	clone.Bindings[0].Args["glyph"] = "?"

	if k.Bindings[0].Args["glyph"] != "#" {
		t.Error("mutating the clone should not affect the original")
	}
}
