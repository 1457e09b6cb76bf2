package exact

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ParseInt parses a decimal integer with an optional leading sign, e.g.
// "-1024" or "+7". Leading zeros are allowed. If s is malformed, the error is
// a *LiteralError.
func ParseInt(s string) (Integer, error) {
	lit, err := scan(s, "integer", false)
	if err != nil {
		return Integer{}, errors.WithStack(err)
	}
	return mkint(lit.neg, lit.magnitude()), nil
}

// ParseFloat parses a decimal number with an optional leading sign and an
// optional decimal point, e.g. "0.1", "-12.5", ".5", or "3.". Exponents are
// not accepted. If s is malformed, the error is a *LiteralError.
func ParseFloat(s string) (Float, error) {
	lit, err := scan(s, "decimal", true)
	if err != nil {
		return Float{}, errors.WithStack(err)
	}
	v := mkint(lit.neg, lit.magnitude())
	return Scaled(v, NewInt(int64(len(lit.frac)))), nil
}

// MustParseFloat is like ParseFloat but panics if s is malformed.
func MustParseFloat(s string) Float {
	x, err := ParseFloat(s)
	if err != nil {
		panic(err)
	}
	return x
}

// MustParseInt is like ParseInt but panics if s is malformed.
func MustParseInt(s string) Integer {
	x, err := ParseInt(s)
	if err != nil {
		panic(err)
	}
	return x
}

// NewFloat returns the Float with the shortest decimal representation that
// rounds to f. NaN and infinities give an error wrapping ErrNotFinite.
func NewFloat(f float64) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Float{}, errors.Wrapf(ErrNotFinite, "converting %v", f)
	}
	x, err := ParseFloat(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		// FormatFloat always produces a valid literal.
		panic("exact: " + err.Error())
	}
	return x, nil
}
