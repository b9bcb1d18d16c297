package main

import "github.com/gdamore/tcell/v2"

type action int

const (
	actionType action = iota
	actionQuit
	actionPause
	actionRestart
	actionNone
)

// keyAction maps a key to a host control; anything else is typing
func keyAction(ev *tcell.EventKey, gameOver bool) action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return actionQuit
	case tcell.KeyEscape, tcell.KeyTab:
		return actionPause
	case tcell.KeyEnter:
		if gameOver {
			return actionRestart
		}
		return actionNone
	}
	if gameOver {
		return actionNone
	}
	return actionType
}
