package core

import "testing"

func TestCleanString(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		lower bool
		want  string
	}{
		{name: "trims", s: "  hello\t", want: "hello"},
		{name: "lowers", s: " Hello ", lower: true, want: "hello"},
		{name: "keeps case by default", s: "Hello", want: "Hello"},
		{name: "empty", s: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.s, tt.lower); got != tt.want {
				t.Errorf("CleanString() = %q, want %q", got, tt.want)
			}
		})
	}
}
