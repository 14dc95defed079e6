package editor

// Motion commands move the cursor and nothing else. Boundary conditions
// clamp or no-op inside the cursor model, so every motion executes.

// MoveLeftCommand moves the cursor one character left.
type MoveLeftCommand struct {
	MotionBase
}

// Execute moves the cursor one character to the left.
func (c *MoveLeftCommand) Execute(ed *Editor) ExecuteResult {
	ed.cursor.MoveLeft()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveLeftCommand) Keys() []string {
	return []string{"a", "<left>"}
}

// Mode returns the mode this command operates in.
func (c *MoveLeftCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveLeftCommand) ID() string {
	return "move.left"
}

// MoveRightCommand moves the cursor one character right, crossing wrap
// boundaries onto continuation lines.
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor one character to the right.
func (c *MoveRightCommand) Execute(ed *Editor) ExecuteResult {
	ed.cursor.MoveRight()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []string {
	return []string{"d", "<right>"}
}

// Mode returns the mode this command operates in.
func (c *MoveRightCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string {
	return "move.right"
}

// MoveUpCommand moves the cursor one virtual line up.
type MoveUpCommand struct {
	MotionBase
}

// Execute moves the cursor one virtual line up.
func (c *MoveUpCommand) Execute(ed *Editor) ExecuteResult {
	ed.cursor.MoveUp()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveUpCommand) Keys() []string {
	return []string{"w", "<up>"}
}

// Mode returns the mode this command operates in.
func (c *MoveUpCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveUpCommand) ID() string {
	return "move.up"
}

// MoveDownCommand moves the cursor one virtual line down.
type MoveDownCommand struct {
	MotionBase
}

// Execute moves the cursor one virtual line down.
func (c *MoveDownCommand) Execute(ed *Editor) ExecuteResult {
	ed.cursor.MoveDown()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveDownCommand) Keys() []string {
	return []string{"s", "<down>"}
}

// Mode returns the mode this command operates in.
func (c *MoveDownCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveDownCommand) ID() string {
	return "move.down"
}
