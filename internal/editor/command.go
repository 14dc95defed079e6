package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ExecuteResult indicates the outcome of command execution.
type ExecuteResult int

const (
	// Executed means the command ran and consumed the key.
	Executed ExecuteResult = iota
	// Skipped means pre-conditions weren't met; the key is consumed with no effect.
	Skipped
)

// Command is an editor action looked up from the registry and applied as
// data. Commands mutate the Editor through Execute; the registry itself is
// never mutated during dispatch, so actions and the table they were looked
// up from cannot alias.
type Command interface {
	// Execute applies the command to the editor.
	Execute(ed *Editor) ExecuteResult

	// Keys returns the trigger key(s) that invoke this command. Aliases
	// (e.g. arrow keys alongside letters) each get an entry.
	Keys() []string

	// Mode returns which input mode this command operates in.
	Mode() Mode

	// ID returns a hierarchical identifier, e.g. "move.down" or "mode.quit".
	// Used for logging.
	ID() string

	// IsModeChange reports whether executing this command switches modes.
	IsModeChange() bool
}

// MotionBase provides defaults for motion commands, which never change mode.
type MotionBase struct{}

func (MotionBase) IsModeChange() bool { return false }

// ModeEntryBase provides defaults for commands whose whole effect is a mode
// switch.
type ModeEntryBase struct{}

func (ModeEntryBase) IsModeChange() bool { return true }

// CommandRegistry provides mode-aware, key-based command dispatch. It is
// populated once at package init and treated as immutable afterwards.
type CommandRegistry struct {
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[Mode]map[string]Command)}
}

// Register adds a command under its Mode() and each of its Keys().
func (r *CommandRegistry) Register(cmd Command) {
	mode := cmd.Mode()
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// Get retrieves the command bound to key in the given mode.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// DefaultRegistry holds the built-in bindings.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Normal mode: navigation and mode entry.
	r.Register(&MoveLeftCommand{})
	r.Register(&MoveRightCommand{})
	r.Register(&MoveUpCommand{})
	r.Register(&MoveDownCommand{})
	r.Register(&EnterInsertCommand{})
	r.Register(&RedrawCommand{})
	r.Register(&QuitCommand{})

	// Insert mode.
	r.Register(&ExitInsertCommand{})
	r.Register(&InsertNewlineCommand{})

	return r
}

// keyToString converts a key event to a registry-compatible key string.
// Returns "" for key types the editor ignores.
func keyToString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return string(msg.Runes[0])
		}
		return "" // multi-rune input (paste) is not dispatched
	case tea.KeySpace:
		return " "
	case tea.KeyEscape:
		return "<escape>"
	case tea.KeyEnter:
		return "<enter>"
	case tea.KeyLeft:
		return "<left>"
	case tea.KeyRight:
		return "<right>"
	case tea.KeyUp:
		return "<up>"
	case tea.KeyDown:
		return "<down>"
	default:
		return ""
	}
}
