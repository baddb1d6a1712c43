package syntax

// Node is the interface implemented by Leaf and Pair.
type Node interface {
	node()
}

// Leaf holds a single atomic character.
type Leaf struct {
	Char rune
}

func (Leaf) node() {}

func (l Leaf) String() string { return Render(l) }

// Pair holds exactly two subtrees. Both are non-nil in any tree returned by
// Parse.
type Pair struct {
	Left  Node
	Right Node
}

func (Pair) node() {}

func (p Pair) String() string { return Render(p) }

// Equal reports whether a and b have the same shape and characters.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.Char == y.Char
	case Pair:
		y, ok := b.(Pair)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	default:
		return a == nil && b == nil
	}
}

// Depth returns the number of nested pairs on the longest path from n to a
// leaf. A lone leaf has depth 0.
func Depth(n Node) int {
	p, ok := n.(Pair)
	if !ok {
		return 0
	}
	return 1 + max(Depth(p.Left), Depth(p.Right))
}

// Leaves returns the characters of n's leaves in left-to-right order.
func Leaves(n Node) []rune {
	var out []rune
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case Leaf:
			out = append(out, n.Char)
		case Pair:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(n)
	return out
}
