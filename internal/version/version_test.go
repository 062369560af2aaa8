package version

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		rev  string
		want string
	}{
		{"", "lily " + Number},
		{"0123456789abcdef", "lily " + Number + " (01234567)"},
		{"abc", "lily " + Number + " (abc)"},
	}
	for _, tt := range tests {
		if got := format(tt.rev); got != tt.want {
			t.Errorf("format(%q) = %q, want %q", tt.rev, got, tt.want)
		}
	}
}
