package machine

// Cursor hands out the runes of a string one at a time.
type Cursor struct {
	runes []rune
	pos   int
}

// NewCursor returns a cursor positioned on the first rune of s.
func NewCursor(s string) *Cursor {
	return &Cursor{runes: []rune(s)}
}

// Current returns the rune under the cursor. It reports false once the
// input is exhausted.
func (c *Cursor) Current() (rune, bool) {
	if c.Done() {
		return 0, false
	}
	return c.runes[c.pos], true
}

// Advance moves to the next rune and reports whether one remains.
func (c *Cursor) Advance() bool {
	if c.pos < len(c.runes) {
		c.pos++
	}
	return !c.Done()
}

// Done reports whether every rune has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.runes)
}

// Position is the 1-based offset of the current rune, or len+1 at the end.
func (c *Cursor) Position() int {
	return c.pos + 1
}
