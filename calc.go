package exact

import "strconv"

// Calculate evaluates the tree rooted at n and returns its exact value.
// Integer literals have scale 0, sums add their terms from left to right
// starting from zero, and negations flip the sign of their operand's value.
// Calculate consumes n.
func (n *Node) Calculate() Float {
	var c calculator
	return c.run(n)
}

type calcTask struct {
	n *Node
	// done indicates the node's operands have been evaluated.
	done bool
}

// calculator evaluates trees with an explicit task stack and value stack, so
// that deep trees cannot exhaust the goroutine stack.
type calculator struct {
	tasks []calcTask
	stack []Float
}

func (c *calculator) run(n *Node) Float {
	c.tasks = append(c.tasks[:0], calcTask{n: n})
	c.stack = c.stack[:0]
	for len(c.tasks) > 0 {
		t := c.tasks[len(c.tasks)-1]
		c.tasks = c.tasks[:len(c.tasks)-1]
		if t.done {
			c.finish(t.n)
			continue
		}
		switch t.n.kind {
		case nodeInt:
			c.push(FromInt(t.n.i))
		case nodeFloat:
			c.push(t.n.f)
		case nodeSum:
			c.tasks = append(c.tasks, calcTask{n: t.n, done: true})
			for i := len(t.n.terms) - 1; i >= 0; i-- {
				c.tasks = append(c.tasks, calcTask{n: t.n.terms[i]})
			}
		case nodeNeg:
			c.tasks = append(c.tasks, calcTask{n: t.n, done: true}, calcTask{n: t.n.left})
		default:
			panic("exact: invalid AST node " + t.n.kind.String())
		}
	}
	if len(c.stack) != 1 {
		panic("exact: inconsistent stack: " + strconv.Itoa(len(c.stack)) + " items (bad AST?)")
	}
	return c.stack[0]
}

// finish combines the evaluated operands of n on the stack.
func (c *calculator) finish(n *Node) {
	switch n.kind {
	case nodeSum:
		k := len(c.stack) - len(n.terms)
		var r Float
		for _, v := range c.stack[k:] {
			r = r.Add(v)
		}
		c.stack = append(c.stack[:k], r)
	case nodeNeg:
		c.push(c.pop().Neg())
	default:
		panic("exact: invalid AST node " + n.kind.String())
	}
}

func (c *calculator) push(x Float) {
	c.stack = append(c.stack, x)
}

// pop removes the top from the stack and returns it.
func (c *calculator) pop() Float {
	r := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return r
}
