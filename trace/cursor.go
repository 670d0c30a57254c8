package trace

// Cursor walks a Sequence for replay. Movement is clamped to the sequence
// bounds. A Cursor is not safe for concurrent use.
type Cursor struct {
	seq Sequence
	pos int
}

// Pos returns the current step index.
func (c *Cursor) Pos() int {
	return c.pos
}

// Current returns the step under the cursor. ok is false for an empty sequence.
func (c *Cursor) Current() (step Step, ok bool) {
	if c.pos >= len(c.seq.Steps) {
		return Step{}, false
	}

	return c.seq.Steps[c.pos], true
}

// Next advances one step and reports whether the cursor moved.
func (c *Cursor) Next() bool {
	if c.pos+1 >= len(c.seq.Steps) {
		return false
	}
	c.pos++

	return true
}

// Prev moves back one step and reports whether the cursor moved.
func (c *Cursor) Prev() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--

	return true
}

// Seek moves to step i, clamped to the valid range.
func (c *Cursor) Seek(i int) {
	switch {
	case len(c.seq.Steps) == 0 || i < 0:
		c.pos = 0
	case i >= len(c.seq.Steps):
		c.pos = len(c.seq.Steps) - 1
	default:
		c.pos = i
	}
}

// Reset moves back to the first step.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Done reports whether the cursor is on the final step.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.seq.Steps)-1
}
