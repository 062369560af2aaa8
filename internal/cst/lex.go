package cst

import "iter"

// Lex returns the tokens of src, produced on demand. The sequence ends when
// the input is exhausted; it is never terminated by an Eof token. Each
// iteration of the returned sequence lexes src from the start.
func Lex(src string) iter.Seq[TokenSpan] {
	return func(yield func(TokenSpan) bool) {
		c := NewCursor(src)
		for !c.IsEOF() {
			if !yield(c.TakeToken()) {
				return
			}
		}
	}
}

// Lexer is a pull-style counterpart to Lex, for parsers that ask for one
// token at a time.
type Lexer struct {
	c *Cursor
}

func NewLexer(src string) *Lexer {
	return &Lexer{c: NewCursor(src)}
}

// Next returns the next token, or false once the input is exhausted.
func (l *Lexer) Next() (TokenSpan, bool) {
	if l.c.IsEOF() {
		return TokenSpan{}, false
	}
	return l.c.TakeToken(), true
}
