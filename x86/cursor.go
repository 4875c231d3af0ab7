package x86

// Cursor is a read-only view into a byte stream with a mutable position,
// threaded by pointer through every parse function instead of the
// double-indirect byte pointer the original C decoder used.
type Cursor struct {
	Buf []byte
	Pos int
}

// NewCursor returns a Cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{Buf: buf}
}

// Done reports whether the cursor has reached the end of the stream.
func (c *Cursor) Done() bool {
	return c.Pos >= len(c.Buf)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.Buf) - c.Pos
}

// byte1 reads and consumes one byte, reporting ok=false instead of panicking
// when the stream is exhausted.
func (c *Cursor) byte1() (b byte, ok bool) {
	if c.Pos >= len(c.Buf) {
		return 0, false
	}
	b = c.Buf[c.Pos]
	c.Pos++
	return b, true
}

// peek returns the next unread byte without consuming it.
func (c *Cursor) peek() (b byte, ok bool) {
	if c.Pos >= len(c.Buf) {
		return 0, false
	}
	return c.Buf[c.Pos], true
}

// uint16le reads two consecutive bytes as a little-endian uint16.
func (c *Cursor) uint16le() (uint16, bool) {
	lo, ok := c.byte1()
	if !ok {
		return 0, false
	}
	hi, ok := c.byte1()
	if !ok {
		return 0, false
	}
	return uint16(lo) | uint16(hi)<<8, true
}
