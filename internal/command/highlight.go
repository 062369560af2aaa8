package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/adhocteam/lily/internal/cst"
)

const highlightCSS = `
pre.lily { background: #1e1e2e; color: #cdd6f4; padding: 1em; }
.tok-identifier { color: #89b4fa; }
.tok-integer, .tok-number, .tok-string, .tok-character { color: #a6e3a1; }
.tok-commentline, .tok-commentblock { color: #6c7086; font-style: italic; }
.tok-symbol { color: #cba6f7; }
.tok-syntax { color: #cba6f7; font-weight: bold; }
.tok-unknown { color: #f38ba8; text-decoration: wavy underline; }
`

// Highlight writes path as a standalone, syntax highlighted HTML page.
func Highlight(w io.Writer, path string, title string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if title == "" {
		title = filepath.Base(path)
	}
	if err := html.Render(w, highlightDocument(title, string(text))); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     a.String(),
		DataAtom: a,
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func highlightDocument(title, src string) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	t := element(atom.Title)
	t.AppendChild(textNode(title))
	head.AppendChild(t)
	style := element(atom.Style)
	style.AppendChild(textNode(highlightCSS))
	head.AppendChild(style)
	root.AppendChild(head)

	body := element(atom.Body)
	pre := element(atom.Pre, html.Attribute{Key: "class", Val: "lily"})
	for ts := range cst.Lex(src) {
		lexeme := ts.Text(src)
		if ts.Kind == cst.Whitespace {
			pre.AppendChild(textNode(lexeme))
			continue
		}
		span := element(atom.Span, html.Attribute{Key: "class", Val: tokenClass(ts)})
		if ts.Kind == cst.Unknown {
			span.Attr = append(span.Attr, html.Attribute{Key: "title", Val: ts.Err.Error()})
		}
		span.AppendChild(textNode(lexeme))
		pre.AppendChild(span)
	}
	body.AppendChild(pre)
	root.AppendChild(body)
	return doc
}

func tokenClass(ts cst.TokenSpan) string {
	return "tok-" + strings.ToLower(ts.Kind.String())
}
