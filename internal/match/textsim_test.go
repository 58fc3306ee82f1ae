package match

import (
	"math"
	"testing"
)

func TestTokenJaccard(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "a man walks", "a man walks", 1.0},
		{"case insensitive", "A Man Walks", "a man walks", 1.0},
		{"half overlap", "a b", "b c", 1.0 / 3.0},
		{"disjoint", "cat dog", "fish bird", 0},
		{"empty left", "", "words here", 0},
		{"empty right", "words here", "", 0},
		{"both empty", "", "", 0},
		{"duplicate tokens collapse", "go go go", "go", 1.0},
		{"whitespace only", "   ", "a", 0},
	}

	for _, tt := range tests {
		if got := TokenJaccard(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: TokenJaccard(%q, %q) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}
