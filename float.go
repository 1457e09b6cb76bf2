package exact

import "strconv"

// Float is an exact decimal number value * 10^-scale, where both the value and
// the scale are Integers. The zero value is 0.
//
// Floats are always normalized so that value has no trailing zero digits,
// which makes each number's representation unique.
type Float struct {
	scale Integer
	value Integer
}

// FromInt returns x as a Float with scale 0.
func FromInt(x Integer) Float {
	return Float{value: x}.norm()
}

// Scaled returns the Float value * 10^-scale.
func Scaled(value, scale Integer) Float {
	return Float{scale: scale, value: value}.norm()
}

// norm strips trailing zero digits from the value, decreasing the scale to
// match.
func (x Float) norm() Float {
	v := x.value.mag()
	if v.isZero() {
		return Float{}
	}
	k := 0
	for v[k] == 0 {
		k++
	}
	if k == 0 {
		return Float{scale: mkint(x.scale.neg, x.scale.mag()), value: x.value}
	}
	return Float{
		scale: x.scale.Sub(NewInt(int64(k))),
		value: mkint(x.value.neg, v[k:]),
	}
}

// Value returns the unscaled value of x.
func (x Float) Value() Integer {
	return mkint(x.value.neg, x.value.mag())
}

// Scale returns the power of ten by which the value of x is divided.
func (x Float) Scale() Integer {
	return mkint(x.scale.neg, x.scale.mag())
}

// Sign returns -1, 0, or +1 as x is negative, zero, or positive.
func (x Float) Sign() int {
	return x.value.Sign()
}

// IsZero reports whether x is 0.
func (x Float) IsZero() bool {
	return x.value.IsZero()
}

// IsInt reports whether x has no fractional part.
func (x Float) IsInt() bool {
	return x.IsZero() || x.scale.Sign() <= 0
}

// Int returns x as an Integer. The result is false if x has a fractional part.
func (x Float) Int() (Integer, bool) {
	if !x.IsInt() {
		return Integer{}, false
	}
	if x.IsZero() {
		return Integer{abs: zeroDigits}, true
	}
	return x.value.Shl(shiftCount(x.scale.Neg())), true
}

// Equal reports whether x and y have the same value.
func (x Float) Equal(y Float) bool {
	return x.Cmp(y) == 0
}

// Neg returns -x.
func (x Float) Neg() Float {
	return Float{scale: x.scale, value: x.value.Neg()}.norm()
}

// Abs returns |x|.
func (x Float) Abs() Float {
	return Float{scale: x.scale, value: x.value.Abs()}.norm()
}

// Add returns x + y. The operand with the smaller scale is aligned to the
// larger one before the values are added.
func (x Float) Add(y Float) Float {
	switch {
	case x.IsZero():
		return y.norm()
	case y.IsZero():
		return x.norm()
	}
	xv, yv, scale := x.value, y.value, x.scale
	d := x.scale.Sub(y.scale)
	switch d.Sign() {
	case -1:
		xv = xv.Shl(shiftCount(d.Neg()))
		scale = y.scale
	case 1:
		yv = yv.Shl(shiftCount(d))
	}
	return Scaled(xv.Add(yv), scale)
}

// Sub returns x - y.
func (x Float) Sub(y Float) Float {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Float) Mul(y Float) Float {
	return Scaled(x.value.Mul(y.value), x.scale.Add(y.scale))
}

// Shift returns x * 10^n.
func (x Float) Shift(n int) Float {
	return Scaled(x.value, x.scale.Sub(NewInt(int64(n))))
}

// Cmp compares x and y and returns -1, 0, or +1 as x is less than, equal to,
// or greater than y.
func (x Float) Cmp(y Float) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < ys:
		return -1
	case xs > ys:
		return 1
	case xs == 0:
		return 0
	}
	r := x.exponent().Cmp(y.exponent())
	if r == 0 {
		r = cmpLeading(x.value.mag(), y.value.mag())
	}
	if xs < 0 {
		r = -r
	}
	return r
}

// exponent returns the number of digits of x before the decimal point, which
// may be negative for numbers smaller than 0.1.
func (x Float) exponent() Integer {
	return NewInt(int64(x.value.Len())).Sub(x.scale)
}

// cmpLeading compares magnitudes whose most significant digits are aligned,
// as if the shorter one were padded with trailing zeros.
func cmpLeading(x, y digits) int {
	i, j := len(x)-1, len(y)-1
	for ; i >= 0 && j >= 0; i, j = i-1, j-1 {
		switch {
		case x[i] < y[j]:
			return -1
		case x[i] > y[j]:
			return 1
		}
	}
	switch {
	case i >= 0 && !x[:i+1].isZero():
		return 1
	case j >= 0 && !y[:j+1].isZero():
		return -1
	}
	return 0
}

// shiftCount converts a non-negative digit count to an int. A count too large
// for an int could not be held in memory as digits anyway.
func shiftCount(n Integer) int {
	v, ok := n.Int64()
	if !ok || v < 0 || int64(int(v)) != v {
		panic("exact: digit shift " + n.String() + " out of range")
	}
	return int(v)
}

// String returns the decimal representation of x in positional notation,
// without an exponent.
func (x Float) String() string {
	return string(x.append(nil))
}

func (x Float) append(b []byte) []byte {
	if x.IsZero() {
		return append(b, '0')
	}
	if x.value.neg {
		b = append(b, '-')
	}
	m := x.value.mag()
	switch {
	case x.scale.Sign() <= 0:
		b = m.text(b)
		for n := shiftCount(x.scale.Neg()); n > 0; n-- {
			b = append(b, '0')
		}
	default:
		s := m.text(nil)
		n := shiftCount(x.scale)
		if n >= len(s) {
			b = append(b, '0', '.')
			for k := len(s); k < n; k++ {
				b = append(b, '0')
			}
			b = append(b, s...)
		} else {
			b = append(b, s[:len(s)-n]...)
			b = append(b, '.')
			b = append(b, s[len(s)-n:]...)
		}
	}
	return b
}

// Float64 returns the float64 nearest to x. Values too large in magnitude
// become ±Inf and values too small become ±0.
func (x Float) Float64() float64 {
	b := make([]byte, 0, x.value.Len()+24)
	if x.value.neg {
		b = append(b, '-')
	}
	b = x.value.mag().text(b)
	b = append(b, 'e')
	b = append(b, x.scale.Neg().String()...)
	// The only possible error is ErrRange, and then f is already ±Inf or ±0.
	f, _ := strconv.ParseFloat(string(b), 64)
	return f
}
