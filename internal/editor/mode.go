package editor

// Mode represents the editor's input mode. The set is closed: Normal for
// navigation, Insert for text entry, and Quit as the terminal state. Once
// the editor reaches ModeQuit no further transitions are accepted.
type Mode int

const (
	// ModeNormal is the default mode for navigation.
	ModeNormal Mode = iota
	// ModeInsert is the mode for inserting text.
	ModeInsert
	// ModeQuit is the terminal state; the control loop exits on reaching it.
	ModeQuit
)

// String returns the status-line representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeQuit:
		return "QUITTING"
	default:
		return "UNKNOWN"
	}
}
