package syntax

import (
	"testing"

	expect "github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	ab := Pair{Left: Leaf{Char: 'a'}, Right: Leaf{Char: 'b'}}
	ba := Pair{Left: Leaf{Char: 'b'}, Right: Leaf{Char: 'a'}}

	expect.True(t, Equal(Leaf{Char: 'a'}, Leaf{Char: 'a'}))
	expect.False(t, Equal(Leaf{Char: 'a'}, Leaf{Char: 'b'}))
	expect.True(t, Equal(ab, Pair{Left: Leaf{Char: 'a'}, Right: Leaf{Char: 'b'}}))
	expect.False(t, Equal(ab, ba))
	expect.False(t, Equal(ab, Leaf{Char: 'a'}))
	expect.False(t, Equal(Leaf{Char: 'a'}, ab))
	expect.True(t, Equal(nil, nil))
	expect.False(t, Equal(nil, Leaf{Char: 'a'}))
}

func TestDepthAndLeaves(t *testing.T) {
	tests := []struct {
		input  string
		depth  int
		leaves string
	}{
		{"a", 0, "a"},
		{"(a b)", 1, "ab"},
		{"((a b) c)", 2, "abc"},
		{"(a (b (c d)))", 3, "abcd"},
		{"((a b) (c d))", 2, "abcd"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("ParseString(%q): %v", tt.input, err)
			}
			if got := Depth(n); got != tt.depth {
				t.Errorf("Depth = %d, want %d", got, tt.depth)
			}
			if got := string(Leaves(n)); got != tt.leaves {
				t.Errorf("Leaves = %q, want %q", got, tt.leaves)
			}
		})
	}
}
