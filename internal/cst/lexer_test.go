package cst

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/adhocteam/lily/internal/source"
)

func tok(kind TokenKind, begin, end source.Pos) TokenSpan {
	return Spanned(kind, begin, end)
}

func bad(err TokenError, begin, end source.Pos) TokenSpan {
	return Invalid(err, begin, end)
}

func TestLex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []TokenSpan
	}{
		{"empty", "", nil},
		{
			"no spaces",
			"main=logShow\"a\"",
			[]TokenSpan{
				tok(Identifier, 0, 4),
				tok(Syntax, 4, 5),
				tok(Identifier, 5, 12),
				tok(String, 12, 15),
			},
		},
		{"leading zeroes", "007", []TokenSpan{tok(Integer, 0, 3)}},
		{"float", "3.14", []TokenSpan{tok(Number, 0, 4)}},
		{"unfinished number", "3.", []TokenSpan{bad(UnfinishedNumber, 0, 2)}},
		{
			"range dots after integer",
			"1..2",
			[]TokenSpan{
				bad(UnfinishedNumber, 0, 2),
				tok(Syntax, 2, 3),
				tok(Integer, 3, 4),
			},
		},
		{"block comment", "{- abc -}", []TokenSpan{tok(CommentBlock, 0, 9)}},
		{"block comment with dashes", "{- a - b -}", []TokenSpan{tok(CommentBlock, 0, 11)}},
		{"unfinished block comment", "{- abc", []TokenSpan{bad(UnfinishedBlockComment, 0, 6)}},
		{"unfinished block comment brace", "{-}", []TokenSpan{bad(UnfinishedBlockComment, 0, 3)}},
		{"double colon", "::", []TokenSpan{tok(Symbol, 0, 2)}},
		{"single colon", ":", []TokenSpan{tok(Syntax, 0, 1)}},
		{
			"colon then equals",
			":=",
			[]TokenSpan{tok(Syntax, 0, 1), tok(Syntax, 1, 2)},
		},
		{
			"equality",
			"x == y",
			[]TokenSpan{
				tok(Identifier, 0, 1),
				tok(Whitespace, 1, 2),
				tok(Symbol, 2, 4),
				tok(Whitespace, 4, 5),
				tok(Identifier, 5, 6),
			},
		},
		{
			"line comment excludes newline",
			"-- hi\n",
			[]TokenSpan{tok(CommentLine, 0, 5), tok(Whitespace, 5, 6)},
		},
		{"character", "'a'", []TokenSpan{tok(Character, 0, 3)}},
		{
			"unfinished character",
			"'ab'",
			[]TokenSpan{bad(UnfinishedCharacter, 0, 2), tok(Identifier, 2, 4)},
		},
		{"lone quote", "'", []TokenSpan{bad(UnfinishedCharacter, 0, 1)}},
		{"unfinished string", "\"abc", []TokenSpan{bad(UnfinishedString, 0, 4)}},
		{
			"arrow",
			"a -> b",
			[]TokenSpan{
				tok(Identifier, 0, 1),
				tok(Whitespace, 1, 2),
				tok(Symbol, 2, 4),
				tok(Whitespace, 4, 5),
				tok(Identifier, 5, 6),
			},
		},
		{
			"record braces",
			"{ a }",
			[]TokenSpan{
				tok(Syntax, 0, 1),
				tok(Whitespace, 1, 2),
				tok(Identifier, 2, 3),
				tok(Whitespace, 3, 4),
				tok(Syntax, 4, 5),
			},
		},
		{
			"field access",
			"x.y",
			[]TokenSpan{tok(Identifier, 0, 1), tok(Syntax, 1, 2), tok(Identifier, 2, 3)},
		},
		{"primes and underscores", "erin'_2", []TokenSpan{tok(Identifier, 0, 7)}},
		{"unicode letter", "λx", []TokenSpan{tok(Identifier, 0, 3)}},
		{"unicode symbol", "→", []TokenSpan{tok(Symbol, 0, 3)}},
		{"whitespace run", "\t\n \r\n", []TokenSpan{tok(Whitespace, 0, 5)}},
		{"control character", "\x01", []TokenSpan{bad(UnknownToken, 0, 1)}},
		{
			"unknown then identifier",
			"\x01a",
			[]TokenSpan{bad(UnknownToken, 0, 1), tok(Identifier, 1, 2)},
		},
		{
			"reserved syntax",
			"();[]",
			[]TokenSpan{
				tok(Syntax, 0, 1),
				tok(Syntax, 1, 2),
				tok(Syntax, 2, 3),
				tok(Syntax, 3, 4),
				tok(Syntax, 4, 5),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Lex(tt.input))
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Lex(%q) (-want, +got)\n%s", tt.input, diff)
			}
		})
	}
}

func TestLexDeterministic(t *testing.T) {
	src := "main :: Effect Unit\nmain = do\n  log \"hi\" -- greet\n  {- done -}\n"
	first := slices.Collect(Lex(src))
	second := slices.Collect(Lex(src))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two lexes differ (-first, +second)\n%s", diff)
	}
}

func TestLexStopsEarly(t *testing.T) {
	var got []TokenSpan
	for ts := range Lex("a b c") {
		got = append(got, ts)
		if ts.Kind == Whitespace {
			break
		}
	}
	want := []TokenSpan{tok(Identifier, 0, 1), tok(Whitespace, 1, 2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}

func TestLexer(t *testing.T) {
	src := "f x = x + 1.5"
	l := NewLexer(src)
	var got []TokenSpan
	for {
		ts, ok := l.Next()
		if !ok {
			break
		}
		got = append(got, ts)
	}
	if diff := cmp.Diff(slices.Collect(Lex(src)), got); diff != "" {
		t.Errorf("Lexer and Lex disagree (-Lex, +Lexer)\n%s", diff)
	}
	if _, ok := l.Next(); ok {
		t.Errorf("Next after exhaustion returned a token")
	}
}

func TestTokenSpanString(t *testing.T) {
	tests := []struct {
		ts   TokenSpan
		want string
	}{
		{tok(Identifier, 0, 4), "Identifier[0,4)"},
		{bad(UnfinishedNumber, 0, 2), "Unknown(UnfinishedNumber)[0,2)"},
	}
	for _, tt := range tests {
		if got := tt.ts.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTakeTokenAtEOFPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	NewCursor("").TakeToken()
}

// checkCoverage asserts the spans of src are contiguous, non-empty and
// cover the whole buffer.
func checkCoverage(t *testing.T, src string) {
	t.Helper()
	var next source.Pos
	for ts := range Lex(src) {
		if ts.Begin != next {
			t.Fatalf("gap or overlap at %d: token %v", next, ts)
		}
		if ts.End <= ts.Begin {
			t.Fatalf("empty token %v", ts)
		}
		if (ts.Kind == Unknown) != (ts.Err != NoError) {
			t.Fatalf("kind and error disagree: %v", ts)
		}
		next = ts.End
	}
	if int(next) != len(src) {
		t.Fatalf("lex ended at %d, input has %d bytes", next, len(src))
	}
}

func TestCoverage(t *testing.T) {
	inputs := []string{
		"",
		"module Main where\n\nimport Prelude\n",
		"{- unfinished -",
		"\"open string\n more",
		"x = 0.5 + 3. - 'c' -- end",
		"\xff\xfe invalid utf8",
		"data Maybe a = Just a | Nothing",
	}
	for _, in := range inputs {
		checkCoverage(t, in)
	}
}

func FuzzLex(f *testing.F) {
	seeds := []string{
		"main=logShow\"a\"",
		"{- abc -}",
		"-- hi\n",
		"007 3. 3.14",
		":: := == ..",
		"'a' 'ab' \"s\"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		checkCoverage(t, in)
	})
}
