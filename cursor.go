package whatwgurl

// cursor walks a byte slice one position at a time, the way the reference
// WHATWG algorithm's "pointer" does: next reads the byte at the current
// position and advances; rewindLast reconsumes the byte just read so it is
// processed again under a different state (the "pb" instruction in
// SPEC_FULL.md §4.5's state table). rewindLast is a no-op when the last
// read was already past the end of input — without that guard, reconsuming
// at end-of-input would walk the cursor backward into the last real byte
// and reprocess it a second time (the exact "break parsing" ambiguity
// spec.md §9 warns not to port literally).
type cursor struct {
	s            []byte
	pos          int
	eof          bool
	lastConsumed bool
}

func newCursor(s []byte) *cursor {
	return &cursor{s: s}
}

func (c *cursor) next() byte {
	if c.pos >= len(c.s) {
		c.eof = true
		c.lastConsumed = false
		return 0
	}
	b := c.s[c.pos]
	c.pos++
	c.eof = false
	c.lastConsumed = true
	return b
}

// rewindLast reconsumes the byte just returned by next, unless that call
// was itself an end-of-input read (see the type doc comment).
func (c *cursor) rewindLast() {
	if c.lastConsumed && c.pos > 0 {
		c.pos--
	}
	c.eof = c.pos >= len(c.s)
	c.lastConsumed = false
}

// rewind moves the cursor back to an earlier absolute position, computed
// as the current position minus n.
func (c *cursor) rewind(n int) {
	c.pos -= n
	if c.pos < 0 {
		c.pos = 0
	}
	c.eof = c.pos >= len(c.s)
	c.lastConsumed = false
}

// tokenEnd returns the end index (exclusive) of a token that started
// earlier and is ending at the byte just read: the delimiter byte itself
// (if one was read) is excluded, and an end-of-input read contributes no
// extra byte to exclude.
func (c *cursor) tokenEnd() int {
	if c.eof {
		return c.pos
	}
	return c.pos - 1
}

func (c *cursor) remaining() []byte {
	return c.s[c.pos:]
}

func (c *cursor) remainingStartsWith(prefix string) bool {
	rest := c.remaining()
	if len(rest) < len(prefix) {
		return false
	}
	return string(rest[:len(prefix)]) == prefix
}
