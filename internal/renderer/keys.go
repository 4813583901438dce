package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lineup/internal/input/key"
)

// TranslateKey converts a tcell key event into a session key event.
// Keys the session does not know map to KeyNone.
func TranslateKey(ev *tcell.EventKey) key.Event {
	switch ev.Key() {
	case tcell.KeyRune:
		return key.RuneEvent(ev.Rune())
	case tcell.KeyEscape:
		return key.Event{Key: key.KeyEscape}
	case tcell.KeyEnter:
		return key.Event{Key: key.KeyEnter}
	case tcell.KeyTab:
		return key.Event{Key: key.KeyTab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.Event{Key: key.KeyBackspace}
	case tcell.KeyUp:
		return key.Event{Key: key.KeyUp}
	case tcell.KeyDown:
		return key.Event{Key: key.KeyDown}
	case tcell.KeyLeft:
		return key.Event{Key: key.KeyLeft}
	case tcell.KeyRight:
		return key.Event{Key: key.KeyRight}
	case tcell.KeyCtrlQ:
		return key.Event{Key: key.KeyCtrlQ}
	case tcell.KeyCtrlS:
		return key.Event{Key: key.KeyCtrlS}
	default:
		return key.Event{Key: key.KeyNone}
	}
}
