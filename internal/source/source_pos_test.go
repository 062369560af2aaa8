package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilePosition(t *testing.T) {
	f := NewFile("main.lily", "main :: Effect Unit\nmain = do\n  pure unit\n")
	tests := []struct {
		pos  Pos
		want Position
	}{
		{0, Position{1, 1}},
		{5, Position{1, 6}},
		{19, Position{1, 20}},
		{20, Position{2, 1}},
		{27, Position{2, 8}},
		{32, Position{3, 3}},
		{42, Position{4, 1}},
		{1000, Position{4, 1}},
		{-3, Position{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := f.Position(tt.pos)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Position(%d) (-want, +got)\n%s", tt.pos, diff)
			}
		})
	}
}

func TestFileLine(t *testing.T) {
	f := NewFile("crlf.lily", "a = 1\r\nb = 2")
	if got, want := f.LineCount(), 2; got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if got, want := f.Line(1), "a = 1"; got != want {
		t.Errorf("Line(1) = %q, want %q", got, want)
	}
	if got, want := f.Line(2), "b = 2"; got != want {
		t.Errorf("Line(2) = %q, want %q", got, want)
	}
	if got := f.Line(3); got != "" {
		t.Errorf("Line(3) = %q, want empty", got)
	}
	if got, want := f.Location(9), "crlf.lily:2:3"; got != want {
		t.Errorf("Location(9) = %q, want %q", got, want)
	}
}

func TestSpan(t *testing.T) {
	src := "let x = 42"
	s := Span{Begin: 4, End: 5}
	if got := s.Text(src); got != "x" {
		t.Errorf("Text() = %q, want %q", got, "x")
	}
	if !s.Contains(4) || s.Contains(5) {
		t.Errorf("Contains: half-open range violated for %v", s)
	}
	joined := s.Join(Span{Begin: 8, End: 10})
	if diff := cmp.Diff(Span{Begin: 4, End: 10}, joined); diff != "" {
		t.Errorf("Join (-want, +got)\n%s", diff)
	}
	if (Span{3, 3}).Len() != 0 || !(Span{3, 3}).Empty() {
		t.Errorf("zero-width span should be empty")
	}
}
