package similarity

import (
	"math"
	"testing"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "both empty", a: "", b: "", want: 0},
		{name: "empty left", a: "", b: "abc", want: 3},
		{name: "empty right", a: "abc", b: "", want: 3},
		{name: "identical", a: "Dmowski", b: "Dmowski", want: 0},
		{name: "single substitution", a: "kitten", b: "mitten", want: 1},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "unicode labels", a: "Piłsudski", b: "Pilsudski", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EditDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLexical(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "Dmowski", b: "Dmowski", want: 1.0},
		{name: "case insensitive", a: "DMOWSKI", b: "dmowski", want: 1.0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "disjoint", a: "ab", b: "xy", want: 0},
		{name: "half overlap", a: "ab", b: "ax", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lexical(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Lexical(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLexicalRange(t *testing.T) {
	pairs := [][2]string{
		{"Roman Dmowski", "Dmowski"},
		{"Narodowa Demokracja", "Endecja"},
		{"a", "aaaaaaaaaa"},
	}
	for _, p := range pairs {
		got := Lexical(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Lexical(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		v1   []float32
		v2   []float32
		want float64
	}{
		{name: "parallel", v1: []float32{1, 0}, v2: []float32{1, 0}, want: 1.0},
		{name: "orthogonal", v1: []float32{1, 0}, v2: []float32{0, 1}, want: 0.0},
		{name: "empty left", v1: nil, v2: []float32{1, 0}, want: 0},
		{name: "empty right", v1: []float32{1, 0}, v2: nil, want: 0},
		{name: "length mismatch", v1: []float32{1, 0, 0}, v2: []float32{1, 0}, want: 0},
		{name: "zero norm", v1: []float32{0, 0}, v2: []float32{1, 1}, want: 0},
		{name: "scaled parallel", v1: []float32{2, 2}, v2: []float32{5, 5}, want: 1.0},
		{name: "anti-parallel clamps to zero", v1: []float32{1, 0}, v2: []float32{-1, 0}, want: 0},
		{name: "obtuse clamps to zero", v1: []float32{1, 1}, v2: []float32{-1, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.v1, tt.v2)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Cosine(%v, %v) = %v, want %v", tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}
