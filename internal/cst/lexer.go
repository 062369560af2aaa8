// Package cst turns lily source text into a stream of spanned tokens.
//
// The tokenizer decides a token's kind from its first scalar plus at most
// two scalars of lookahead, then consumes the rest of the token. It never
// backtracks, so every byte of input lands in exactly one span and the
// spans of a full lex are contiguous from 0 to len(src).
//
// Unicode normalization, escape sequences in strings and characters, and
// nested block comments are not supported.
package cst

import "unicode"

// TakeToken consumes and returns the next token. It must not be called at
// the end of input.
func (c *Cursor) TakeToken() TokenSpan {
	begin := c.ConsumedLen()
	initial, ok := c.Take()
	if !ok {
		panic("cst: TakeToken called at end of input")
	}

	kind, err := c.scan(initial)

	end := c.ConsumedLen()
	if kind == Unknown {
		return Invalid(err, begin, end)
	}
	return Spanned(kind, begin, end)
}

// scan dispatches on the first scalar of a token, already consumed.
func (c *Cursor) scan(initial rune) (TokenKind, TokenError) {
	switch {
	case initial == '{' && c.Peek1() == '-':
		return c.scanBlockComment()

	case initial == '"':
		c.TakeWhile(func(r rune) bool { return r != '"' })
		if r, ok := c.Take(); ok && r == '"' {
			return String, NoError
		}
		return Unknown, UnfinishedString

	case initial == '\'':
		c.Take()
		if c.Peek1() == '\'' {
			c.Take()
			return Character, NoError
		}
		return Unknown, UnfinishedCharacter

	case isReserved(initial):
		return Syntax, NoError

	// reserved syntax that turns into an operator when repeated
	case initial == ':' || initial == '=' || initial == '.':
		if c.Peek1() == initial {
			c.TakeWhile(func(r rune) bool { return isOperator(r) || r == initial })
			return Symbol, NoError
		}
		return Syntax, NoError

	case initial == '-' && c.Peek1() == '-':
		c.TakeWhile(func(r rune) bool { return r != '\n' })
		return CommentLine, NoError

	case unicode.IsLetter(initial) || initial == '_':
		c.TakeWhile(isIdentifierRest)
		return Identifier, NoError

	case unicode.IsSpace(initial):
		c.TakeWhile(unicode.IsSpace)
		return Whitespace, NoError

	case unicode.IsNumber(initial):
		return c.scanNumber()

	case isOperator(initial):
		c.TakeWhile(isOperator)
		return Symbol, NoError

	default:
		return Unknown, UnknownToken
	}
}

// scanBlockComment is entered with the opening '{' consumed and '-' next.
func (c *Cursor) scanBlockComment() (TokenKind, TokenError) {
	c.Take()
	for {
		c.TakeWhile(func(r rune) bool { return r != '-' })
		if c.Peek1() == '-' && c.Peek2() == '}' {
			c.Take()
			c.Take()
			return CommentBlock, NoError
		}
		if _, ok := c.Take(); !ok {
			return Unknown, UnfinishedBlockComment
		}
	}
}

// scanNumber is entered with the first digit consumed.
func (c *Cursor) scanNumber() (TokenKind, TokenError) {
	c.TakeWhile(unicode.IsNumber)
	if c.Peek1() != '.' {
		return Integer, NoError
	}
	c.Take()
	if c.IsEOF() || !unicode.IsNumber(c.Peek1()) {
		return Unknown, UnfinishedNumber
	}
	c.TakeWhile(unicode.IsNumber)
	return Number, NoError
}

func isReserved(r rune) bool {
	switch r {
	case ';', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isOperator(r rune) bool {
	return unicode.IsSymbol(r) || unicode.IsPunct(r)
}

func isIdentifierRest(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '_'
}
