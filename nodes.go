package exact

import (
	"strings"
)

// Node is a node of an expression tree. Each node owns its children; a node
// must appear in at most one tree.
type Node struct {
	kind nodeKind

	i Integer
	f Float

	// terms are the terms of a sum.
	terms []*Node
	// left is the operand of a negation.
	left *Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeInt   // integer literal i
	nodeFloat // decimal literal f
	nodeSum   // add terms left to right
	nodeNeg   // negate left
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node
//go:generate go mod tidy

// IntNode returns an integer literal node.
func IntNode(x Integer) *Node {
	return &Node{kind: nodeInt, i: x}
}

// FloatNode returns a decimal literal node.
func FloatNode(x Float) *Node {
	return &Node{kind: nodeFloat, f: x}
}

// Sum returns a node adding terms from left to right. The sum of no terms is
// zero. Sum takes ownership of the terms.
func Sum(terms ...*Node) *Node {
	for _, t := range terms {
		if t == nil {
			panic("exact: nil term in Sum")
		}
	}
	return &Node{kind: nodeSum, terms: terms}
}

// Negate returns a node negating x. Negate takes ownership of x.
func Negate(x *Node) *Node {
	if x == nil {
		panic("exact: Negate of nil node")
	}
	return &Node{kind: nodeNeg, left: x}
}

// Terms returns the terms of a sum node, or nil for any other node.
func (n *Node) Terms() []*Node {
	if n.kind != nodeSum {
		return nil
	}
	return n.terms
}

// Operand returns the operand of a negation node, or nil for any other node.
func (n *Node) Operand() *Node {
	if n.kind != nodeNeg {
		return nil
	}
	return n.left
}

// Literal returns the value of a literal node. The result is false if n is
// not a literal.
func (n *Node) Literal() (Float, bool) {
	switch n.kind {
	case nodeInt:
		return FromInt(n.i), true
	case nodeFloat:
		return n.f, true
	default:
		return Float{}, false
	}
}

func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeInt:
		b.WriteString(n.i.String())
	case nodeFloat:
		b.WriteString(n.f.String())
	case nodeSum:
		for k, t := range n.terms {
			if k > 0 {
				b.WriteString(" + ")
			}
			t.fmt(b, !square)
		}
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	default:
		panic("exact: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
