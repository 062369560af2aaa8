package cst

import (
	"unicode/utf8"

	"github.com/adhocteam/lily/internal/source"
)

// EOF is what Peek1 and Peek2 report once the input runs out.
const EOF = '\x00'

// Cursor scans a source buffer forward, one scalar at a time, with two
// scalars of lookahead.
type Cursor struct {
	length int
	rest   string
}

func NewCursor(src string) *Cursor {
	return &Cursor{length: len(src), rest: src}
}

func (c *Cursor) IsEOF() bool {
	return len(c.rest) == 0
}

// ConsumedLen is the number of bytes consumed so far.
func (c *Cursor) ConsumedLen() source.Pos {
	return source.Pos(c.length - len(c.rest))
}

func (c *Cursor) Peek1() rune {
	if len(c.rest) == 0 {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.rest)
	return r
}

func (c *Cursor) Peek2() rune {
	if len(c.rest) == 0 {
		return EOF
	}
	_, n := utf8.DecodeRuneInString(c.rest)
	if len(c.rest) == n {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(c.rest[n:])
	return r
}

func (c *Cursor) Take() (rune, bool) {
	if len(c.rest) == 0 {
		return EOF, false
	}
	r, n := utf8.DecodeRuneInString(c.rest)
	c.rest = c.rest[n:]
	return r, true
}

// TakeWhile consumes scalars while pred holds for the next one, stopping at
// the first scalar that fails it or at the end of input.
func (c *Cursor) TakeWhile(pred func(rune) bool) {
	for !c.IsEOF() && pred(c.Peek1()) {
		c.Take()
	}
}
