package exact

import "strconv"

// Simplify rewrites the tree rooted at n into a simpler equivalent tree and
// returns its root. Simplify consumes n: nodes of the original tree may be
// reused in the result, so n must not be used afterward.
//
// The rewrites are:
//
//   - A literal is unchanged.
//   - The terms of a sum are simplified, nested sums are spliced into it in
//     place, and all literal terms are folded into one constant term at the
//     end. A constant of zero is dropped. The constant is an integer literal
//     unless a non-zero decimal literal contributed to it.
//   - The negation of a negation is the inner operand, which is not
//     simplified further.
//   - The negation of a sum is the simplified sum of the negated terms.
//   - The negation of a literal is the literal with its sign flipped.
//
// Apart from operands returned by double negation, no sum in the result has a
// sum as a term or more than one literal term.
func (n *Node) Simplify() *Node {
	var s simplifier
	return s.run(n)
}

type simplifyOp int8

const (
	// simplifyNode simplifies a node and pushes the result.
	simplifyNode simplifyOp = iota
	// simplifyFold pops the last k results and pushes their folded sum.
	simplifyFold
)

type simplifyTask struct {
	op simplifyOp
	n  *Node
	k  int
}

// simplifier rewrites trees using explicit stacks so that deep trees cannot
// exhaust the goroutine stack.
type simplifier struct {
	tasks   []simplifyTask
	results []*Node
}

func (s *simplifier) run(n *Node) *Node {
	s.tasks = append(s.tasks[:0], simplifyTask{op: simplifyNode, n: n})
	s.results = s.results[:0]
	for len(s.tasks) > 0 {
		t := s.tasks[len(s.tasks)-1]
		s.tasks = s.tasks[:len(s.tasks)-1]
		switch t.op {
		case simplifyNode:
			s.node(t.n)
		case simplifyFold:
			k := len(s.results) - t.k
			r := fold(s.results[k:])
			s.results = append(s.results[:k], r)
		default:
			panic("exact: invalid simplify op " + strconv.Itoa(int(t.op)))
		}
	}
	if len(s.results) != 1 {
		panic("exact: inconsistent simplify stack: " + strconv.Itoa(len(s.results)) + " results")
	}
	return s.results[0]
}

// node schedules the simplification of n. Every call eventually pushes
// exactly one result.
func (s *simplifier) node(n *Node) {
	switch n.kind {
	case nodeInt, nodeFloat:
		s.results = append(s.results, n)
	case nodeSum:
		s.distribute(n.terms, false)
	case nodeNeg:
		c := n.left
		switch c.kind {
		case nodeNeg:
			s.results = append(s.results, c.left)
		case nodeSum:
			s.distribute(c.terms, true)
		case nodeInt:
			s.results = append(s.results, IntNode(c.i.Neg()))
		case nodeFloat:
			s.results = append(s.results, FloatNode(c.f.Neg()))
		default:
			panic("exact: invalid node kind " + c.kind.String())
		}
	default:
		panic("exact: invalid node kind " + n.kind.String())
	}
}

// distribute schedules the simplification of each term, negated if neg is
// set, followed by folding them into one sum. Tasks are pushed in reverse so
// that results arrive in the terms' order.
func (s *simplifier) distribute(terms []*Node, neg bool) {
	s.tasks = append(s.tasks, simplifyTask{op: simplifyFold, k: len(terms)})
	for i := len(terms) - 1; i >= 0; i-- {
		t := terms[i]
		if neg {
			t = Negate(t)
		}
		s.tasks = append(s.tasks, simplifyTask{op: simplifyNode, n: t})
	}
}

// fold flattens nested sums among terms and folds every literal into one
// trailing constant term, returning the new sum. Order of the remaining terms
// is preserved.
func fold(terms []*Node) *Node {
	var (
		it  Integer
		ft  Float
		out = make([]*Node, 0, len(terms)+1)
	)
	// Pending terms, last first.
	stack := make([]*Node, 0, len(terms))
	for i := len(terms) - 1; i >= 0; i-- {
		stack = append(stack, terms[i])
	}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t.kind {
		case nodeSum:
			for i := len(t.terms) - 1; i >= 0; i-- {
				stack = append(stack, t.terms[i])
			}
		case nodeInt:
			it = it.Add(t.i)
		case nodeFloat:
			ft = ft.Add(t.f)
		default:
			out = append(out, t)
		}
	}
	switch total := FromInt(it).Add(ft); {
	case total.IsZero():
		// Drop the constant.
	case !ft.IsZero():
		out = append(out, FloatNode(total))
	default:
		out = append(out, IntNode(it))
	}
	return &Node{kind: nodeSum, terms: out}
}
