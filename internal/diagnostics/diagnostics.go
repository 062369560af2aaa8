// Package diagnostics turns the per-token problems found while lexing into
// located, printable messages.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/adhocteam/lily/internal/cst"
	"github.com/adhocteam/lily/internal/source"
	"github.com/adhocteam/lily/internal/token"
)

type Severity int

const (
	Error Severity = iota
	// Warning marks a token whose meaning is still clear, such as 007.
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Diagnostic is a problem at a place in a source file.
type Diagnostic struct {
	Severity Severity
	File     string
	Span     source.Span
	// Line and Column locate Span.Begin, both 1-based.
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// List is the diagnostics of one file, in source order.
type List []Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

// Err returns l as an error, or nil if it is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Check lexes f and reports every malformed token. Redundant leading zeroes
// are warnings, everything else is an error.
func Check(f *source.File) List {
	var list List
	for t := range token.Tokens(f.Text) {
		msg := message(t)
		if msg == "" {
			continue
		}
		severity := Error
		if errors.Is(t.Err, token.ErrLeadingZeroes) {
			severity = Warning
		}
		pos := f.Position(t.Begin)
		list = append(list, Diagnostic{
			Severity: severity,
			File:     f.Name,
			Span:     t.Span,
			Line:     pos.Line,
			Column:   pos.Column,
			Message:  msg,
		})
	}
	return list
}

func message(t token.Token) string {
	if t.Err == nil {
		return ""
	}
	var terr cst.TokenError
	switch {
	case errors.As(t.Err, &terr):
		if terr == cst.UnknownToken {
			return fmt.Sprintf("unknown token %q", t.Text)
		}
		return terr.Error()
	case errors.Is(t.Err, token.ErrLeadingZeroes):
		return fmt.Sprintf("unnecessary leading zeroes in %q", t.Text)
	case errors.Is(t.Err, token.ErrOutOfRange) && t.Class == token.Double:
		return fmt.Sprintf("number literal %q out of range", t.Text)
	case errors.Is(t.Err, token.ErrOutOfRange):
		return fmt.Sprintf("integer literal %q out of range", t.Text)
	default:
		return fmt.Sprintf("%v: %q", t.Err, t.Text)
	}
}

// Fprint writes each diagnostic followed by the offending line and a caret
// marker under the span, one caret per scalar. Spans running past the end of
// their first line are marked to the end of that line.
func Fprint(w io.Writer, f *source.File, list List) error {
	for _, d := range list {
		if _, err := fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Error()); err != nil {
			return err
		}
		line := f.Line(d.Line)
		col := min(d.Column-1, len(line))
		end := min(col+d.Span.Len(), len(line))
		width := max(utf8.RuneCountInString(line[col:end]), 1)
		pad := strings.Map(func(r rune) rune {
			if r == '\t' {
				return '\t'
			}
			return ' '
		}, line[:col])
		if _, err := fmt.Fprintf(w, "    %s\n    %s%s\n", line, pad, strings.Repeat("^", width)); err != nil {
			return err
		}
	}
	return nil
}
