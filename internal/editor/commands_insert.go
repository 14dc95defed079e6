package editor

// InsertRuneCommand inserts a single character at the cursor offset. It is
// not registered by key; Insert-mode dispatch constructs one for every rune
// that reaches the editor (shifted characters arrive already uppercased from
// the terminal layer).
type InsertRuneCommand struct {
	MotionBase
	r rune
}

// Execute inserts the character and re-synchronizes the cursor against the
// rebuilt table so it tracks the insertion.
func (c *InsertRuneCommand) Execute(ed *Editor) ExecuteResult {
	if c.r == 0 {
		return Skipped
	}
	ed.insertRune(c.r)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertRuneCommand) Keys() []string {
	return nil
}

// Mode returns the mode this command operates in.
func (c *InsertRuneCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *InsertRuneCommand) ID() string {
	return "insert.rune"
}

// InsertNewlineCommand inserts a line break at the cursor offset.
type InsertNewlineCommand struct {
	MotionBase
}

// Execute inserts a newline; the cursor follows with the vertical
// equivalent of the forward re-sync.
func (c *InsertNewlineCommand) Execute(ed *Editor) ExecuteResult {
	ed.insertRune('\n')
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertNewlineCommand) Keys() []string {
	return []string{"<enter>"}
}

// Mode returns the mode this command operates in.
func (c *InsertNewlineCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *InsertNewlineCommand) ID() string {
	return "insert.newline"
}
