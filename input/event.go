package input

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyBackspace is the key name that deletes the last buffered rune
const KeyBackspace = "Backspace"

// Event is one key-down, host independent
// Key is either a single printable character or a multi-character key name
type Event struct {
	Key  string
	Ctrl bool
	Meta bool
}

// single returns the rune when Key holds exactly one character
func (e Event) single() (rune, bool) {
	if e.Key == "" {
		return 0, false
	}
	c, size := utf8.DecodeRuneInString(e.Key)
	if c == utf8.RuneError || size != len(e.Key) {
		return 0, false
	}
	return c, true
}

// FromTcell translates a terminal key event
// Non-rune keys map to their tcell names, which the manager ignores
func FromTcell(ev *tcell.EventKey) Event {
	mod := ev.Modifiers()
	out := Event{
		Ctrl: mod&tcell.ModCtrl != 0,
		Meta: mod&(tcell.ModAlt|tcell.ModMeta) != 0,
	}

	switch ev.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
		// terminals report Backspace2 as Ctrl+H on some layouts
		out.Ctrl = false
	case tcell.KeyRune:
		out.Key = string(ev.Rune())
	default:
		out.Key = ev.Name()
	}
	return out
}
