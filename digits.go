package exact

// radix is the base of a single digit.
const radix = 10

// digits is an unsigned magnitude of the form
//
//	x = x[n-1]*10^(n-1) + x[n-2]*10^(n-2) + ... + x[1]*10 + x[0]
//
// stored least significant digit first. A tidy sequence has every digit in
// [0, radix) and no most significant zero digits, except that zero is
// digits{0}. Intermediate sequences inside an operation may be untidy, and
// the empty sequence is read as zero.
type digits []byte

// zeroDigits is the canonical zero. It must never be modified.
var zeroDigits = digits{0}

// tidy carries any digit >= radix into the next position and trims most
// significant zero digits. It modifies z, so z must not be shared.
func (z digits) tidy() digits {
	c := 0
	for i, d := range z {
		d := int(d) + c
		z[i] = byte(d % radix)
		c = d / radix
	}
	for c > 0 {
		z = append(z, byte(c%radix))
		c /= radix
	}
	n := len(z)
	for n > 0 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return digits{0}
	}
	return z[:n]
}

func (x digits) isZero() bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// at returns the digit at position i, or 0 beyond the end of x.
func (x digits) at(i int) int {
	if i < len(x) {
		return int(x[i])
	}
	return 0
}

// cmp compares two tidy magnitudes and returns -1, 0, or +1.
func (x digits) cmp(y digits) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

// add returns the tidy sum x + y. x and y need not be tidy.
func (x digits) add(y digits) digits {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(digits, len(x)+1)
	var c byte
	for i := range x {
		d := x[i] + c
		if i < len(y) {
			d += y[i]
		}
		c = 0
		if d >= radix {
			d -= radix
			c = 1
		}
		z[i] = d
	}
	z[len(x)] = c
	return z.tidy()
}

// sub returns the tidy difference x - y, which must not be negative.
func (x digits) sub(y digits) digits {
	z := make(digits, len(x))
	var b byte
	for i := range x {
		s := y.at(i) + int(b)
		d := int(x[i]) - s
		b = 0
		if d < 0 {
			d += radix
			b = 1
		}
		z[i] = byte(d)
	}
	if b != 0 || len(y) > len(x) && !y[len(x):].isZero() {
		panic("exact: magnitude subtraction underflow")
	}
	return z.tidy()
}

// shl returns x * 10^n by prepending n zero digits.
func (x digits) shl(n int) digits {
	if x.isZero() {
		return digits{0}
	}
	z := make(digits, n+len(x))
	copy(z[n:], x)
	return z.tidy()
}

// mulDigit returns the tidy product x * d for a single digit d.
func (x digits) mulDigit(d byte) digits {
	if d == 0 {
		return digits{0}
	}
	z := make(digits, len(x)+1)
	c := 0
	for i, xd := range x {
		p := int(xd)*int(d) + c
		z[i] = byte(p % radix)
		c = p / radix
	}
	z[len(x)] = byte(c)
	return z.tidy()
}

// split returns the low n digits of x and the remaining high digits. Either
// part may be empty or have most significant zeros.
func (x digits) split(n int) (lo, hi digits) {
	if len(x) <= n {
		return x, nil
	}
	return x[:n], x[n:]
}

// text appends the digits of x, most significant first, to b.
func (x digits) text(b []byte) []byte {
	if len(x) == 0 {
		return append(b, '0')
	}
	for i := len(x) - 1; i >= 0; i-- {
		b = append(b, '0'+x[i])
	}
	return b
}
