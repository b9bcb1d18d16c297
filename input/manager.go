package input

import (
	"unicode"

	"github.com/charazer/kana-game-sub000/content"
)

// Manager owns the typed buffer and turns key events into buffer updates
// and commits. It is not safe for concurrent use; the host delivers keys on
// the game goroutine.
type Manager struct {
	state  State
	buffer []rune

	onChange func(buffer string)
	onCommit func(buffer string)
}

// NewManager creates a disabled manager with an empty buffer
func NewManager() *Manager {
	return &Manager{buffer: make([]rune, 0, 16)}
}

// OnBufferChange registers the display callback
func (m *Manager) OnBufferChange(fn func(buffer string)) {
	m.onChange = fn
}

// OnCommit registers the callback fired after every accepted character
func (m *Manager) OnCommit(fn func(buffer string)) {
	m.onCommit = fn
}

func (m *Manager) Enable()        { m.state = StateEnabled }
func (m *Manager) Disable()       { m.state = StateDisabled }
func (m *Manager) Enabled() bool  { return m.state == StateEnabled }
func (m *Manager) State() State   { return m.state }
func (m *Manager) Buffer() string { return string(m.buffer) }

// SetBuffer replaces the buffer and notifies the display
func (m *Manager) SetBuffer(s string) {
	m.buffer = append(m.buffer[:0], []rune(s)...)
	m.emitChange()
}

// Refresh re-sends the current buffer to the display
func (m *Manager) Refresh() {
	m.emitChange()
}

// HandleKey processes one key-down. The return value reports whether the
// host should suppress its default handling of the key.
func (m *Manager) HandleKey(ev Event) bool {
	if m.state != StateEnabled {
		return false
	}

	if ev.Key == KeyBackspace {
		if len(m.buffer) > 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
		}
		m.emitChange()
		return true
	}

	if ev.Ctrl || ev.Meta {
		return false
	}
	c, ok := ev.single()
	if !ok || !unicode.IsPrint(c) {
		return false
	}

	c = unicode.ToLower(c)
	if !content.IsRomajiRune(c) && !content.IsKanaRune(c) {
		return false
	}

	m.buffer = append(m.buffer, c)
	m.emitChange()
	if m.onCommit != nil {
		m.onCommit(string(m.buffer))
	}
	return true
}

func (m *Manager) emitChange() {
	if m.onChange != nil {
		m.onChange(string(m.buffer))
	}
}
