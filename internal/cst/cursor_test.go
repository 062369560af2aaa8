package cst

import (
	"testing"
	"unicode"
)

func TestCursorPeek(t *testing.T) {
	c := NewCursor("aλ")
	if got := c.Peek1(); got != 'a' {
		t.Errorf("Peek1() = %q, want 'a'", got)
	}
	if got := c.Peek2(); got != 'λ' {
		t.Errorf("Peek2() = %q, want 'λ'", got)
	}
	c.Take()
	if got := c.Peek2(); got != EOF {
		t.Errorf("Peek2() at last scalar = %q, want EOF", got)
	}
	c.Take()
	if !c.IsEOF() {
		t.Fatalf("expected EOF")
	}
	if got := c.Peek1(); got != EOF {
		t.Errorf("Peek1() at EOF = %q, want EOF", got)
	}
	if got, want := c.ConsumedLen(), 3; int(got) != want {
		t.Errorf("ConsumedLen() = %d, want %d", got, want)
	}
}

func TestCursorTake(t *testing.T) {
	c := NewCursor("ab")
	for _, want := range "ab" {
		got, ok := c.Take()
		if !ok || got != want {
			t.Fatalf("Take() = %q, %v, want %q, true", got, ok, want)
		}
	}
	if _, ok := c.Take(); ok {
		t.Errorf("Take() at EOF reported a scalar")
	}
}

func TestCursorTakeWhile(t *testing.T) {
	c := NewCursor("abc123")
	c.TakeWhile(unicode.IsLetter)
	if got := c.ConsumedLen(); got != 3 {
		t.Errorf("ConsumedLen() = %d, want 3", got)
	}
	if got := c.Peek1(); got != '1' {
		t.Errorf("TakeWhile left %q next, want '1'", got)
	}
	c.TakeWhile(func(rune) bool { return true })
	if !c.IsEOF() {
		t.Errorf("TakeWhile(always) did not reach EOF")
	}
	// the EOF sentinel must not be consumed even if the predicate accepts it
	c.TakeWhile(func(r rune) bool { return r == EOF })
	if got := c.ConsumedLen(); got != 6 {
		t.Errorf("ConsumedLen() = %d, want 6", got)
	}
}
