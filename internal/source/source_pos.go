package source

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Pos is a byte offset into a source buffer.
type Pos int

// Span is a half-open byte range [Begin, End) into a source buffer.
type Span struct {
	Begin Pos
	End   Pos
}

func (s Span) Len() int {
	return int(s.End - s.Begin)
}

func (s Span) Empty() bool {
	return s.End <= s.Begin
}

// Text slices src with the span. The caller keeps the buffer alive; spans
// never own text.
func (s Span) Text(src string) string {
	return src[s.Begin:s.End]
}

func (s Span) Contains(p Pos) bool {
	return s.Begin <= p && p < s.End
}

// Join returns the smallest span covering both s and o.
func (s Span) Join(o Span) Span {
	if o.Begin < s.Begin {
		s.Begin = o.Begin
	}
	if o.End > s.End {
		s.End = o.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Begin, s.End)
}

// Position is a human-facing location. Line and Column are 1-based, and
// Column counts bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// File is a named source buffer.
type File struct {
	Name string
	Text string

	once  sync.Once
	lines []Pos // offset of the first byte of each line
}

func NewFile(name, text string) *File {
	return &File{Name: name, Text: text}
}

func (f *File) index() {
	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		for i := 0; i < len(f.Text); i++ {
			if f.Text[i] == '\n' {
				f.lines = append(f.lines, Pos(i+1))
			}
		}
	})
}

// Position converts an offset into a line and column. Offsets outside the
// buffer are clamped.
func (f *File) Position(p Pos) Position {
	f.index()
	if p < 0 {
		p = 0
	}
	if int(p) > len(f.Text) {
		p = Pos(len(f.Text))
	}
	// index of the last line starting at or before p
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > p }) - 1
	return Position{Line: i + 1, Column: int(p-f.lines[i]) + 1}
}

// Location renders p as name:line:column.
func (f *File) Location(p Pos) string {
	return fmt.Sprintf("%s:%s", f.Name, f.Position(p))
}

// Line returns the text of the 1-based line n, without its newline. Out of
// range lines are empty.
func (f *File) Line(n int) string {
	f.index()
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := f.lines[n-1]
	end := Pos(len(f.Text))
	if n < len(f.lines) {
		end = f.lines[n] - 1
	}
	return strings.TrimSuffix(f.Text[start:end], "\r")
}

// LineCount is the number of lines in the file. An empty file has one
// (empty) line.
func (f *File) LineCount() int {
	f.index()
	return len(f.lines)
}
