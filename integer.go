package exact

// Integer is a signed integer of arbitrary size. The zero value is 0.
//
// Integers are values: operations never modify their receiver or operands,
// and always return a new, normalized result.
type Integer struct {
	// neg is true for negative numbers and never for zero.
	neg bool
	// abs is the magnitude. Empty only for the zero value of Integer.
	abs digits
}

// mkint creates an Integer from a sign and a tidy magnitude, making zero
// non-negative.
func mkint(neg bool, abs digits) Integer {
	if abs.isZero() {
		return Integer{abs: zeroDigits}
	}
	return Integer{neg: neg, abs: abs}
}

// mag returns the magnitude of x, treating the zero value as zero.
func (x Integer) mag() digits {
	if len(x.abs) == 0 {
		return zeroDigits
	}
	return x.abs
}

// NewInt returns the Integer with the value of x.
func NewInt(x int64) Integer {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	z := make(digits, 0, 20)
	for {
		z = append(z, byte(u%radix))
		u /= radix
		if u == 0 {
			break
		}
	}
	return mkint(x < 0, z)
}

// Int64 returns the value of x as an int64. The result is false if x cannot
// be represented in an int64, in which case the value is meaningless.
func (x Integer) Int64() (int64, bool) {
	// The most negative int64 has a magnitude one larger than the most
	// positive.
	limit := uint64(1<<63 - 1)
	if x.neg {
		limit++
	}
	var u uint64
	m := x.mag()
	for i := len(m) - 1; i >= 0; i-- {
		d := uint64(m[i])
		if u > (limit-d)/radix {
			return 0, false
		}
		u = u*radix + d
	}
	if x.neg {
		return int64(-u), true
	}
	return int64(u), true
}

// String returns the decimal representation of x, with a leading "-" if x is
// negative.
func (x Integer) String() string {
	m := x.mag()
	b := make([]byte, 0, len(m)+1)
	if x.neg {
		b = append(b, '-')
	}
	return string(m.text(b))
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x Integer) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.mag().isZero():
		return 0
	default:
		return 1
	}
}

// IsZero reports whether x is 0.
func (x Integer) IsZero() bool {
	return x.Sign() == 0
}

// Len returns the number of decimal digits in the magnitude of x. Zero has
// one digit.
func (x Integer) Len() int {
	return len(x.mag())
}

// Equal reports whether x and y have the same value.
func (x Integer) Equal(y Integer) bool {
	return x.Cmp(y) == 0
}

// Cmp compares x and y and returns -1, 0, or +1 as x is less than, equal to,
// or greater than y.
func (x Integer) Cmp(y Integer) int {
	switch {
	case !x.neg && y.neg:
		return 1
	case x.neg && !y.neg:
		return -1
	case x.neg:
		return -x.mag().cmp(y.mag())
	default:
		return x.mag().cmp(y.mag())
	}
}

// CmpAbs compares the magnitudes of x and y.
func (x Integer) CmpAbs(y Integer) int {
	return x.mag().cmp(y.mag())
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	return mkint(!x.neg, x.mag())
}

// Abs returns |x|.
func (x Integer) Abs() Integer {
	return mkint(false, x.mag())
}

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	if x.neg == y.neg {
		return mkint(x.neg, x.mag().add(y.mag()))
	}
	switch x.mag().cmp(y.mag()) {
	case 1:
		return mkint(x.neg, x.mag().sub(y.mag()))
	case -1:
		return mkint(y.neg, y.mag().sub(x.mag()))
	default:
		return Integer{abs: zeroDigits}
	}
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	return mkint(x.neg != y.neg, x.mag().mul(y.mag()))
}

// Shl returns x * 10^n. n must not be negative.
func (x Integer) Shl(n int) Integer {
	if n < 0 {
		panic("exact: negative shift count")
	}
	return mkint(x.neg, x.mag().shl(n))
}
