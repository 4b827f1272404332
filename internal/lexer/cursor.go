package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"jpath/internal/source"
)

// Cursor walks the bytes [Off, Limit) of one file. Offsets are file-absolute.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32 // не включительно
}

// NewCursor creates a cursor spanning the whole file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: limit}
}

// NewRangeCursor creates a cursor over [start, end), clamped to the file.
func NewRangeCursor(f *source.File, start, end uint32) Cursor {
	c := NewCursor(f)
	c.Limit = min(end, c.Limit)
	c.Off = min(start, c.Limit)
	return c
}

// rest: непрочитанная часть диапазона
func (c *Cursor) rest() []byte {
	if c.Off >= c.Limit {
		return nil
	}
	return c.File.Content[c.Off:c.Limit]
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at the end of the range.
func (c *Cursor) Peek() byte {
	if r := c.rest(); len(r) > 0 {
		return r[0]
	}
	return 0
}

// Peek2 returns the current and the next byte; ok is false when fewer than
// two bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	r := c.rest()
	if len(r) < 2 {
		return 0, 0, false
	}
	return r[0], r[1], true
}

// Bump consumes one byte and returns it (0 at the end of the range).
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.Peek() != b {
		return false
	}
	c.Off++
	return true
}

// Mark is a saved offset, used to build the span of a scanned token.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m to the current offset.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

// Reset rewinds the cursor to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
