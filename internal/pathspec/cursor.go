package pathspec

// cursor tracks a byte offset within a path template's raw bytes.
type cursor struct {
	src []byte
	off uint32
}

func newCursor(src []byte) cursor {
	return cursor{src: src}
}

func (c *cursor) eof() bool {
	return int(c.off) >= len(c.src)
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9')
}

func isPathSpecial(b byte) bool {
	return b == '/' || b == '{' || b == '}'
}
