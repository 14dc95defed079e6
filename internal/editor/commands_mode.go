package editor

// EnterInsertCommand switches from Normal to Insert mode.
type EnterInsertCommand struct {
	ModeEntryBase
}

// Execute switches the editor into Insert mode.
func (c *EnterInsertCommand) Execute(ed *Editor) ExecuteResult {
	ed.mode = ModeInsert
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertCommand) Keys() []string {
	return []string{"i"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertCommand) ID() string {
	return "mode.insert"
}

// ExitInsertCommand returns from Insert to Normal mode.
type ExitInsertCommand struct {
	ModeEntryBase
}

// Execute switches the editor back into Normal mode.
func (c *ExitInsertCommand) Execute(ed *Editor) ExecuteResult {
	ed.mode = ModeNormal
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ExitInsertCommand) Keys() []string {
	return []string{"<escape>"}
}

// Mode returns the mode this command operates in.
func (c *ExitInsertCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *ExitInsertCommand) ID() string {
	return "mode.normal"
}

// QuitCommand moves the editor into its terminal state. The control loop
// exits cleanly on seeing ModeQuit; events that still arrive afterwards are
// ignored.
type QuitCommand struct {
	ModeEntryBase
}

// Execute switches the editor into Quit mode.
func (c *QuitCommand) Execute(ed *Editor) ExecuteResult {
	ed.mode = ModeQuit
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *QuitCommand) Keys() []string {
	return []string{"q"}
}

// Mode returns the mode this command operates in.
func (c *QuitCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *QuitCommand) ID() string {
	return "mode.quit"
}

// RedrawCommand flushes the rendered-row cache, forcing a full repaint.
type RedrawCommand struct {
	MotionBase
}

// Execute flushes every cached row.
func (c *RedrawCommand) Execute(ed *Editor) ExecuteResult {
	ed.invalidateRows()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *RedrawCommand) Keys() []string {
	return []string{"r"}
}

// Mode returns the mode this command operates in.
func (c *RedrawCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *RedrawCommand) ID() string {
	return "view.redraw"
}
