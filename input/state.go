package input

// State is the manager's acceptance state
type State uint8

const (
	StateDisabled State = iota // keystrokes are ignored
	StateEnabled               // keystrokes edit the buffer
)

func (s State) String() string {
	if s == StateEnabled {
		return "enabled"
	}
	return "disabled"
}
