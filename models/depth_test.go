package models

import "testing"

func TestResolveDepth(t *testing.T) {
	tests := []struct {
		in   string
		want DepthLevel
	}{
		{"basic", DepthBasic},
		{"advanced", DepthAdvanced},
		{"deep", DepthDeep},
		{"DEEP", DepthDeep},
		{" Advanced ", DepthAdvanced},
		{"", DepthBasic},
		{"bogus", DepthBasic},
	}
	for _, tt := range tests {
		if got := ResolveDepth(tt.in); got != tt.want {
			t.Errorf("ResolveDepth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDepthString(t *testing.T) {
	if got := DepthAdvanced.String(); got != "advanced" {
		t.Errorf("DepthAdvanced.String() = %q, want %q", got, "advanced")
	}
	if got := DepthLevel(99).String(); got != "basic" {
		t.Errorf("unknown depth String() = %q, want %q", got, "basic")
	}
}
