package command

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/adhocteam/lily/internal/cst"
	"github.com/adhocteam/lily/internal/token"
)

// Color palette for token dumps
var (
	nameColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	literalColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
	symbolColor  = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	commentColor = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#6C7086"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	offsetStyle = lipgloss.NewStyle().Foreground(commentColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	kindStyles = map[cst.TokenKind]lipgloss.Style{
		cst.Identifier:   lipgloss.NewStyle().Foreground(nameColor),
		cst.Integer:      lipgloss.NewStyle().Foreground(literalColor),
		cst.Number:       lipgloss.NewStyle().Foreground(literalColor),
		cst.String:       lipgloss.NewStyle().Foreground(literalColor),
		cst.Character:    lipgloss.NewStyle().Foreground(literalColor),
		cst.CommentLine:  lipgloss.NewStyle().Foreground(commentColor).Italic(true),
		cst.CommentBlock: lipgloss.NewStyle().Foreground(commentColor).Italic(true),
		cst.Symbol:       lipgloss.NewStyle().Foreground(symbolColor),
		cst.Syntax:       lipgloss.NewStyle().Foreground(symbolColor).Bold(true),
		cst.Whitespace:   lipgloss.NewStyle().Faint(true),
		cst.Eof:          lipgloss.NewStyle(),
		cst.Unknown:      errorStyle,
	}
)

func classStyle(c token.Class) lipgloss.Style {
	switch c {
	case token.NameLower, token.NameUpper, token.Underscore:
		return kindStyles[cst.Identifier]
	case token.Integer, token.Double, token.String, token.Character:
		return kindStyles[cst.String]
	case token.CommentLine, token.CommentBlock:
		return kindStyles[cst.CommentLine]
	case token.Trivia:
		return kindStyles[cst.Whitespace]
	case token.NameSymbol:
		return kindStyles[cst.Symbol]
	case token.Invalid:
		return errorStyle
	default:
		return kindStyles[cst.Syntax]
	}
}

// paint renders s with style when color is on.
func paint(color bool, style lipgloss.Style, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}
