package cst

import (
	"fmt"

	"github.com/adhocteam/lily/internal/source"
)

// TokenKind is the coarse category of a lexed token. The set is closed;
// Unknown tokens carry a TokenError saying what went wrong.
type TokenKind uint8

const (
	Identifier TokenKind = iota // _erin', Erin'
	Integer                     // 0, 1, 2
	Number                      // 1.0, 42.0
	String                      // "let's all love lain"
	Character                   // 'a'
	CommentLine                 // -- listen!
	CommentBlock                // {- hey! -}
	Symbol                      // $, +, .., ::
	Syntax                      // ; ( ) [ ] { } : = .
	Whitespace
	// Eof is reserved for an explicit end marker. Lex never produces it;
	// exhaustion of the sequence is the end of input.
	Eof
	Unknown
)

func (k TokenKind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Integer:
		return "Integer"
	case Number:
		return "Number"
	case String:
		return "String"
	case Character:
		return "Character"
	case CommentLine:
		return "CommentLine"
	case CommentBlock:
		return "CommentBlock"
	case Symbol:
		return "Symbol"
	case Syntax:
		return "Syntax"
	case Whitespace:
		return "Whitespace"
	case Eof:
		return "Eof"
	case Unknown:
		return "Unknown"
	default:
		panic("unexpected token kind")
	}
}

// TokenError says why a token is Unknown. It is recoverable: the lexer
// reports it in the stream and carries on.
type TokenError uint8

const (
	NoError TokenError = iota
	UnfinishedBlockComment
	UnfinishedCharacter
	UnfinishedNumber
	UnfinishedString
	UnknownToken
)

func (e TokenError) String() string {
	switch e {
	case NoError:
		return "NoError"
	case UnfinishedBlockComment:
		return "UnfinishedBlockComment"
	case UnfinishedCharacter:
		return "UnfinishedCharacter"
	case UnfinishedNumber:
		return "UnfinishedNumber"
	case UnfinishedString:
		return "UnfinishedString"
	case UnknownToken:
		return "UnknownToken"
	default:
		panic("unexpected token error")
	}
}

func (e TokenError) Error() string {
	switch e {
	case NoError:
		return "no error"
	case UnfinishedBlockComment:
		return "unfinished block comment"
	case UnfinishedCharacter:
		return "unfinished character literal"
	case UnfinishedNumber:
		return "unfinished number literal"
	case UnfinishedString:
		return "unfinished string literal"
	case UnknownToken:
		return "unknown token"
	default:
		panic("unexpected token error")
	}
}

// TokenSpan is a token located in its source buffer. It holds offsets only;
// recover the lexeme with Span.Text.
//
// Err is NoError unless Kind is Unknown.
type TokenSpan struct {
	source.Span
	Kind TokenKind
	Err  TokenError
}

// Spanned builds a well-formed token. Use Invalid for Unknown tokens.
func Spanned(kind TokenKind, begin, end source.Pos) TokenSpan {
	if kind == Unknown {
		panic("cst: Spanned called with Unknown kind")
	}
	return TokenSpan{Span: source.Span{Begin: begin, End: end}, Kind: kind}
}

func Invalid(err TokenError, begin, end source.Pos) TokenSpan {
	if err == NoError {
		panic("cst: Invalid called with NoError")
	}
	return TokenSpan{Span: source.Span{Begin: begin, End: end}, Kind: Unknown, Err: err}
}

// IsTrivia reports whether the token carries no meaning for a parser.
func (t TokenSpan) IsTrivia() bool {
	switch t.Kind {
	case Whitespace, CommentLine, CommentBlock:
		return true
	default:
		return false
	}
}

// KindString renders the kind with its error, e.g. Unknown(UnfinishedString).
func (t TokenSpan) KindString() string {
	if t.Kind == Unknown {
		return "Unknown(" + t.Err.String() + ")"
	}
	return t.Kind.String()
}

func (t TokenSpan) String() string {
	return fmt.Sprintf("%s[%d,%d)", t.KindString(), t.Begin, t.End)
}
