package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"scanfmt/internal/source"
)

// cursor is the single forward position shared by all sub-scanners.
// Reads past the end yield 0 and never move it.
type cursor struct {
	src  []byte
	file source.FileID
	off  uint32
	end  uint32
}

func newCursor(f *source.File) cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("format too large: %w", err))
	}
	return cursor{src: f.Content, file: f.ID, end: end}
}

func (c *cursor) eof() bool { return c.off >= c.end }

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekAt returns the byte n positions ahead.
func (c *cursor) peekAt(n uint32) (byte, bool) {
	if c.off+n >= c.end {
		return 0, false
	}
	return c.src[c.off+n], true
}

// next consumes and returns one byte.
func (c *cursor) next() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

// eat consumes b if it is next.
func (c *cursor) eat(b byte) bool {
	if c.eof() || c.src[c.off] != b {
		return false
	}
	c.off++
	return true
}

// eatPair consumes a and b only when both follow.
func (c *cursor) eatPair(a, b byte) bool {
	if c.off+1 >= c.end || c.src[c.off] != a || c.src[c.off+1] != b {
		return false
	}
	c.off += 2
	return true
}

// skipWhile consumes bytes of class cls.
func (c *cursor) skipWhile(cls charClass) {
	for c.off < c.end && cls.has(c.src[c.off]) {
		c.off++
	}
}

// skipUntil consumes bytes up to the first one of class cls.
func (c *cursor) skipUntil(cls charClass) {
	for c.off < c.end && !cls.has(c.src[c.off]) {
		c.off++
	}
}

// spanFrom returns [start, off).
func (c *cursor) spanFrom(start uint32) source.Span {
	return source.Span{File: c.file, Start: start, End: c.off}
}
