package command

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"

	"github.com/adhocteam/lily/internal/cst"
	"github.com/adhocteam/lily/internal/source"
	"github.com/adhocteam/lily/internal/token"
)

type DumpOptions struct {
	// Color styles the output with terminal colors.
	Color bool
	// Trivia includes whitespace and comment tokens.
	Trivia bool
	// Classify shows the refined token class instead of the lexer kind.
	Classify bool
}

const kindWidth = 28

// Tokens lexes every file in paths and writes a token listing for each, in
// argument order. Files are read and lexed concurrently.
func Tokens(w io.Writer, paths []string, opts DumpOptions) error {
	logger := slog.Default()
	outs := make([]bytes.Buffer, len(paths))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			n := DumpTokens(&outs[i], path, string(text), opts)
			logger.Debug("Lexed", "file", path, "tokens", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outs {
		if _, err := outs[i].WriteTo(w); err != nil {
			return fmt.Errorf("writing token listing: %w", err)
		}
	}
	return nil
}

// DumpTokens writes the listing of a single buffer and returns the number of
// tokens it listed or skipped, trivia included.
func DumpTokens(buf *bytes.Buffer, name string, src string, opts DumpOptions) int {
	fmt.Fprintln(buf, paint(opts.Color, headerStyle, name))
	if opts.Classify {
		return dumpClassified(buf, src, opts)
	}
	n := 0
	for ts := range cst.Lex(src) {
		n++
		if !opts.Trivia && ts.IsTrivia() {
			continue
		}
		dumpLine(buf, opts.Color, ts.Span, ts.KindString(), kindStyles[ts.Kind], ts.Text(src))
	}
	return n
}

func dumpClassified(buf *bytes.Buffer, src string, opts DumpOptions) int {
	n := 0
	for t := range token.Tokens(src) {
		n++
		if !opts.Trivia && t.IsTrivia() {
			continue
		}
		kind := t.Class.String()
		style := classStyle(t.Class)
		if t.Err != nil {
			kind += "(" + t.Err.Error() + ")"
			style = errorStyle
		}
		dumpLine(buf, opts.Color, t.Span, kind, style, t.Span.Text(src))
	}
	return n
}

func dumpLine(buf *bytes.Buffer, color bool, span source.Span, kind string, style lipgloss.Style, lexeme string) {
	pad := strings.Repeat(" ", max(kindWidth-len(kind), 1))
	offsets := fmt.Sprintf("%5d..%-5d", span.Begin, span.End)
	fmt.Fprintf(buf, "%s %s%s%q\n",
		paint(color, offsetStyle, offsets),
		paint(color, style, kind),
		pad,
		lexeme)
}
