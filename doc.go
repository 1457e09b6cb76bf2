// Package exact implements exact decimal arithmetic and a small symbolic
// expression tree.
//
// An Integer is a signed whole number of any size, stored as base-10 digits.
// A Float is an Integer value scaled by a power of ten, so that 0.1 + 0.2 is
// exactly 0.3 and never a binary approximation of it. Both are immutable
// values: every operation returns a new result and leaves its operands alone.
//
// Expressions are built from literals with Sum and Negate. Simplify rewrites
// a tree into a flatter form, folding every constant term of a sum into one,
// and Calculate reduces a tree to a single Float. Both consume the tree they
// are called on.
//
package exact
