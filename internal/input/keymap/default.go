package keymap

import "github.com/dshills/lineup/internal/review"

// Action names dispatched by the default keymap.
const (
	ActionMarkToggle        = "mark.toggle"
	ActionMarkAdvance       = "mark.advance"
	ActionMarkAdvanceSearch = "mark.advanceSearch"
	ActionMarkPrevLine      = "mark.prevLine"
	ActionMarkNextUnmarked  = "mark.nextUnmarked"
	ActionMarkJumpToItem    = "mark.jumpToItem"

	ActionLookupFavourites = "lookup.favourites"
	ActionLookupAbstractA  = "lookup.abstractA"
	ActionLookupAbstractB  = "lookup.abstractB"
	ActionLookupBrowser    = "lookup.browser"
	ActionLookupDictionary = "lookup.dictionary"
)

// Default returns the default review keymap for an alphabet. Each
// alphabet entry binds its trigger key to mark.toggle with the glyph
// as an argument; the fixed action keys follow.
func Default(alphabet review.Alphabet) *Keymap {
	k := New("default-review").WithSource("default")

	for _, e := range alphabet.Entries() {
		k.AddBinding(Binding{
			Key:         e.Key,
			Action:      ActionMarkToggle,
			Description: "Toggle the " + e.Glyph + " mark",
			Args:        map[string]any{"glyph": e.Glyph},
		})
	}

	k.AddBinding(Binding{Key: ' ', Action: ActionMarkAdvance, Description: "Advance and mark"})
	k.AddBinding(Binding{Key: 's', Action: ActionMarkAdvanceSearch, Description: "Advance, mark and search"})
	k.AddBinding(Binding{Key: 'p', Action: ActionMarkPrevLine, Description: "Previous line"})
	k.AddBinding(Binding{Key: 'n', Action: ActionMarkNextUnmarked, Description: "Skip to last marked line of run"})
	k.AddBinding(Binding{Key: 'e', Action: ActionMarkJumpToItem, Description: "Jump to item on line"})

	k.AddBinding(Binding{Key: 'f', Action: ActionLookupFavourites, Description: "Favourite search for item"})
	k.AddBinding(Binding{Key: 'a', Action: ActionLookupAbstractA, Description: "Abstract lookup, provider A"})
	k.AddBinding(Binding{Key: 'w', Action: ActionLookupAbstractB, Description: "Abstract lookup, provider B"})
	k.AddBinding(Binding{Key: 'b', Action: ActionLookupBrowser, Description: "Open web search for item"})
	k.AddBinding(Binding{Key: 'd', Action: ActionLookupDictionary, Description: "Dictionary lookup for item"})

	return k
}
