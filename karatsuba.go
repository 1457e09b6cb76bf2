package exact

import "math/bits"

// mul returns the tidy product x * y.
func (x digits) mul(y digits) digits {
	if x.isZero() || y.isZero() {
		return digits{0}
	}
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	return karatsuba(x, y, mulLevel(n))
}

// mulLevel returns the recursion level for multiplying operands of at most n
// digits, max(0, ceil(log2(n)) - 1). Operands at level l have at most
// 2^(l+1) digits and are split into groups of 2^l digits.
func mulLevel(n int) uint {
	if n <= 2 {
		return 0
	}
	return uint(bits.Len(uint(n-1))) - 1
}

// karatsuba multiplies x and y, each of which has at most 2^(level+1) digits,
// by splitting both at 2^level digits:
//
//	x*y = lo + cross*10^g + hi*10^(2g)
//
// where lo = x0*y0, hi = x1*y1, and cross = (x0+x1)*(y0+y1) - lo - hi.
func karatsuba(x, y digits, level uint) digits {
	if x.isZero() || y.isZero() {
		return digits{0}
	}
	if level == 0 {
		return mulBase(x, y)
	}
	g := 1 << level
	x0, x1 := x.split(g)
	y0, y1 := y.split(g)
	lo := karatsuba(x0, y0, level-1)
	hi := karatsuba(x1, y1, level-1)
	cross := mulSums(x0.add(x1), y0.add(y1), level-1)
	cross = cross.sub(lo).sub(hi)
	return lo.add(cross.shl(g)).add(hi.shl(2 * g))
}

// mulSums multiplies the group sums a and b at the given level. Each sum has
// at most one digit past 2^(level+1), which can only be 0 or 1. That digit is
// split off so the recursive product stays within the level's width:
//
//	(a0 + ta*10^g) * (b0 + tb*10^g) = a0*b0 + (ta*b0 + tb*a0)*10^g + ta*tb*10^(2g)
func mulSums(a, b digits, level uint) digits {
	g := 1 << (level + 1)
	if len(a) > g+1 || len(b) > g+1 {
		panic("exact: karatsuba group sum too wide")
	}
	a0, a1 := a.split(g)
	b0, b1 := b.split(g)
	ta, tb := byte(a1.at(0)), byte(b1.at(0))
	z := karatsuba(a0, b0, level)
	if ta != 0 {
		z = z.add(b0.mulDigit(ta).shl(g))
	}
	if tb != 0 {
		z = z.add(a0.mulDigit(tb).shl(g))
	}
	if ta != 0 && tb != 0 {
		z = z.add(digits{ta * tb}.shl(2 * g))
	}
	return z
}

// mulBase multiplies two numbers of at most two digits each, x = x1*10 + x0
// and y = y1*10 + y0, using one multiplication for the cross term.
func mulBase(x, y digits) digits {
	if len(x) > 2 || len(y) > 2 {
		panic("exact: karatsuba base case operand too wide")
	}
	x0, x1 := x.at(0), x.at(1)
	y0, y1 := y.at(0), y.at(1)
	lo := x0 * y0
	hi := x1 * y1
	cross := (x0+x1)*(y0+y1) - lo - hi
	z := digits{
		byte(lo % radix),
		byte(lo/radix + cross%radix),
		byte(cross/radix + hi%radix),
		byte(hi / radix),
	}
	return z.tidy()
}
