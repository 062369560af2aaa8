// Package token refines the coarse spans produced by package cst into the
// tokens a parser consumes: names split by case, reserved punctuation and
// arrows named, and numeric literals parsed.
//
// Classify maps one span to one token. Tokens and Significant also fuse an
// `=` span with a `>` operator run that directly follows it, since the core
// lexer ends `=` before any other operator character. Every other token
// keeps its span.
package token

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/adhocteam/lily/internal/cst"
	"github.com/adhocteam/lily/internal/source"
)

type Class uint8

const (
	Invalid Class = iota
	NameLower
	NameUpper
	NameSymbol
	Integer
	Double
	String
	Character
	CommentLine
	CommentBlock
	Trivia
	ParenLeft
	ParenRight
	SquareLeft
	SquareRight
	BracketLeft
	BracketRight
	Semicolon
	Colon
	DoubleColon
	Equals
	Period
	Comma
	Pipe
	At
	Tick
	Underscore
	ArrowFunction
	ArrowConstraint
)

var classNames = [...]string{
	Invalid:         "Invalid",
	NameLower:       "NameLower",
	NameUpper:       "NameUpper",
	NameSymbol:      "NameSymbol",
	Integer:         "Integer",
	Double:          "Double",
	String:          "String",
	Character:       "Character",
	CommentLine:     "CommentLine",
	CommentBlock:    "CommentBlock",
	Trivia:          "Trivia",
	ParenLeft:       "ParenLeft",
	ParenRight:      "ParenRight",
	SquareLeft:      "SquareLeft",
	SquareRight:     "SquareRight",
	BracketLeft:     "BracketLeft",
	BracketRight:    "BracketRight",
	Semicolon:       "Semicolon",
	Colon:           "Colon",
	DoubleColon:     "DoubleColon",
	Equals:          "Equals",
	Period:          "Period",
	Comma:           "Comma",
	Pipe:            "Pipe",
	At:              "At",
	Tick:            "Tick",
	Underscore:      "Underscore",
	ArrowFunction:   "ArrowFunction",
	ArrowConstraint: "ArrowConstraint",
}

func (c Class) String() string {
	if int(c) >= len(classNames) {
		panic("unexpected token class")
	}
	return classNames[c]
}

var (
	ErrLeadingZeroes = errors.New("unnecessary leading zeroes")
	ErrOutOfRange    = errors.New("numeric literal out of range")
	ErrNonDecimal    = errors.New("numeric literal has non-decimal digits")
)

// Token is a classified span. Text holds the interesting part of the lexeme:
// names and symbols verbatim, literals without their quotes, comments without
// their markers.
type Token struct {
	source.Span
	Class Class
	Text  string
	Int   int64
	Float float64
	// Doc marks a line comment written as `-- | text`.
	Doc bool
	// Leading covers the trivia coalesced in front of the token by
	// Significant. It is empty otherwise.
	Leading source.Span
	// Err is a cst.TokenError for Invalid tokens, or ErrLeadingZeroes,
	// ErrOutOfRange or ErrNonDecimal for malformed numbers.
	Err error
}

var syntaxClasses = map[string]Class{
	"(": ParenLeft,
	")": ParenRight,
	"[": SquareLeft,
	"]": SquareRight,
	"{": BracketLeft,
	"}": BracketRight,
	";": Semicolon,
	":": Colon,
	"=": Equals,
	".": Period,
}

var symbolClasses = map[string]Class{
	"::": DoubleColon,
	"->": ArrowFunction,
	",":  Comma,
	"|":  Pipe,
	"@":  At,
	"`":  Tick,
}

// Classify refines a single span of src.
func Classify(src string, ts cst.TokenSpan) Token {
	text := ts.Text(src)
	t := Token{Span: ts.Span, Text: text}
	switch ts.Kind {
	case cst.Identifier:
		first, _ := utf8.DecodeRuneInString(text)
		switch {
		case text == "_":
			t.Class = Underscore
		case unicode.IsUpper(first):
			t.Class = NameUpper
		default:
			t.Class = NameLower
		}
	case cst.Syntax:
		c, ok := syntaxClasses[text]
		if !ok {
			panic(fmt.Sprintf("token: unexpected syntax %q", text))
		}
		t.Class = c
	case cst.Symbol:
		if c, ok := symbolClasses[text]; ok {
			t.Class = c
		} else {
			t.Class = NameSymbol
		}
	case cst.Integer:
		t.Class = Integer
		t.Err = checkLeadingZeroes(text)
		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			t.Int = n
		} else if t.Err == nil {
			t.Err = numError(err)
		}
	case cst.Number:
		t.Class = Double
		t.Err = checkLeadingZeroes(text)
		f, err := strconv.ParseFloat(text, 64)
		if err == nil {
			t.Float = f
		} else if t.Err == nil {
			t.Err = numError(err)
		}
	case cst.String:
		t.Class = String
		t.Text = text[1 : len(text)-1]
	case cst.Character:
		t.Class = Character
		t.Text = text[1 : len(text)-1]
	case cst.CommentLine:
		t.Class = CommentLine
		t.Text, t.Doc = commentText(text)
	case cst.CommentBlock:
		t.Class = CommentBlock
		t.Text = strings.TrimSpace(text[2 : len(text)-2])
	case cst.Whitespace:
		t.Class = Trivia
	case cst.Unknown:
		t.Class = Invalid
		t.Err = ts.Err
	case cst.Eof:
		panic("token: Eof is never lexed")
	default:
		panic("unexpected token kind")
	}
	return t
}

// checkLeadingZeroes rejects literals such as 007. A single leading zero, as
// in 0 or 0.5 or 07, is fine.
func checkLeadingZeroes(text string) error {
	if strings.HasPrefix(text, "00") {
		return ErrLeadingZeroes
	}
	return nil
}

// numError maps a strconv failure. The lexer accepts any Unicode number
// scalar as a digit, so literals such as ٣ or ² reach here too.
func numError(err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return ErrOutOfRange
	}
	return ErrNonDecimal
}

// commentText strips the `--` marker and an optional `|` doc marker.
func commentText(text string) (string, bool) {
	body := strings.TrimLeft(text[2:], " ")
	if strings.HasPrefix(body, "|") {
		return strings.TrimSpace(body[1:]), true
	}
	return strings.TrimSpace(text[2:]), false
}

// Tokens classifies every span of src, trivia included. An `=` directly
// followed by an operator run starting with `>` becomes one token over both
// spans: ArrowConstraint for `=>`, NameSymbol for longer runs such as `=>>`.
func Tokens(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var eq cst.TokenSpan
		held := false
		for ts := range cst.Lex(src) {
			if held {
				held = false
				if ts.Kind == cst.Symbol && strings.HasPrefix(ts.Text(src), ">") {
					if !yield(fatArrow(src, eq, ts)) {
						return
					}
					continue
				}
				if !yield(Classify(src, eq)) {
					return
				}
			}
			if ts.Kind == cst.Syntax && ts.Text(src) == "=" {
				eq, held = ts, true
				continue
			}
			if !yield(Classify(src, ts)) {
				return
			}
		}
		if held {
			yield(Classify(src, eq))
		}
	}
}

func fatArrow(src string, eq, sym cst.TokenSpan) Token {
	span := eq.Span.Join(sym.Span)
	t := Token{Span: span, Class: NameSymbol, Text: span.Text(src)}
	if t.Text == "=>" {
		t.Class = ArrowConstraint
	}
	return t
}

// IsTrivia reports whether t is whitespace or a comment.
func (t Token) IsTrivia() bool {
	switch t.Class {
	case Trivia, CommentLine, CommentBlock:
		return true
	}
	return false
}

// Significant classifies src like Tokens and drops whitespace and comments.
// Each run of consecutive trivia is coalesced into the Leading span of the
// token that follows it; trailing trivia at the end of input is dropped.
func Significant(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		var leading source.Span
		var inTrivia bool
		for t := range Tokens(src) {
			if t.IsTrivia() {
				if inTrivia {
					leading = leading.Join(t.Span)
				} else {
					leading, inTrivia = t.Span, true
				}
				continue
			}
			if inTrivia {
				t.Leading = leading
			}
			leading, inTrivia = source.Span{}, false
			if !yield(t) {
				return
			}
		}
	}
}
