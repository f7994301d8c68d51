package db

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "example.com", 30, "example.com"},
		{"exactly max", "abcde", 5, "abcde"},
		{"elided", "example-shoestore.com", 10, "example..."},
		{"multibyte domain", "münchener-läden.example", 10, "münchen..."},
		{"max of three", "example.com", 3, "exa"},
		{"max of one", "example.com", 1, "e"},
		{"zero max", "example.com", 0, ""},
		{"negative max", "example.com", -1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
