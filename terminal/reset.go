package terminal

import (
	"io"
	"os"
)

// resetSequence undoes everything a crashed full-screen session may have
// left enabled: mouse reporting, hidden cursor, alternate screen, styling
// and disabled autowrap, followed by a full reset
var resetSequence = []string{
	"\x1b[?1003l", "\x1b[?1002l", "\x1b[?1000l", "\x1b[?1006l",
	"\x1b[?25h",
	"\x1b[?1049l",
	"\x1b[0m",
	"\x1b[?7h",
	"\x1bc",
}

// EmergencyReset restores the terminal without relying on tcell state.
// Used from panic handlers, where the screen may be half torn down.
func EmergencyReset(w io.Writer) {
	for _, seq := range resetSequence {
		io.WriteString(w, seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// escape sequences alone do not restore termios
	resetTerminalMode()
}
