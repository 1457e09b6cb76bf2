package exact_test

import (
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/exact"
)

// rndInt returns a random Integer of up to n digits and its big.Int value.
func rndInt(rng *rand.Rand, n int) (exact.Integer, *big.Int) {
	var b strings.Builder
	if rng.Intn(2) == 0 {
		b.WriteByte('-')
	}
	for k := 1 + rng.Intn(n); k > 0; k-- {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	x := exact.MustParseInt(b.String())
	v, _ := new(big.Int).SetString(b.String(), 10)
	return x, v
}

func TestNewInt(t *testing.T) {
	cases := []struct {
		name string
		x    int64
		s    string
	}{
		{"zero", 0, "0"},
		{"one", 1, "1"},
		{"neg", -1, "-1"},
		{"ten", 10, "10"},
		{"radix-boundary", 100, "100"},
		{"max", math.MaxInt64, "9223372036854775807"},
		{"min", math.MinInt64, "-9223372036854775808"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := exact.NewInt(c.x)
			if s := x.String(); s != c.s {
				t.Errorf("wrong string: want %s, got %s", c.s, s)
			}
			v, ok := x.Int64()
			if !ok || v != c.x {
				t.Errorf("wrong Int64: want %d, got %d (ok=%t)", c.x, v, ok)
			}
			if l := x.Len(); l != len(strings.TrimPrefix(c.s, "-")) {
				t.Errorf("wrong Len %d for %s", l, c.s)
			}
		})
	}
}

func TestInt64Range(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"9223372036854775807", true},
		{"9223372036854775808", false},
		{"-9223372036854775808", true},
		{"-9223372036854775809", false},
		{"100000000000000000000", false},
		{"-0", true},
	}
	for _, c := range cases {
		x := exact.MustParseInt(c.s)
		v, ok := x.Int64()
		if ok != c.ok {
			t.Errorf("%s: want ok=%t, got %t", c.s, c.ok, ok)
		}
		if ok && strconv.FormatInt(v, 10) != x.String() {
			t.Errorf("%s: got %d", c.s, v)
		}
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		src string
		s   string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+0", "0"},
		{"000", "0"},
		{"007", "7"},
		{"-007", "-7"},
		{"+42", "42"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"-123456789012345678901234567890", "-123456789012345678901234567890"},
	}
	for _, c := range cases {
		x, err := exact.ParseInt(c.src)
		if err != nil {
			t.Errorf("%q: unexpected error %v", c.src, err)
			continue
		}
		if x.String() != c.s {
			t.Errorf("%q: want %s, got %s", c.src, c.s, x)
		}
		// Round trip.
		y, err := exact.ParseInt(x.String())
		if err != nil || !y.Equal(x) {
			t.Errorf("%q: round trip gave %v, %v", c.src, y, err)
		}
	}
}

func TestParseIntErrors(t *testing.T) {
	cases := []struct {
		src  string
		text string
		col  int
	}{
		{"", "", 0},
		{"-", "-", 1},
		{"+", "+", 1},
		{"1-", "1-", 2},
		{"--1", "--", 2},
		{"1.5", "1.", 2},
		{"12a", "12a", 3},
		{" 1", " ", 1},
		{"1 ", "1 ", 2},
		{"0x10", "0x", 2},
		{"١٢", "١", 1},
	}
	for _, c := range cases {
		_, err := exact.ParseInt(c.src)
		if err == nil {
			t.Errorf("%q: no error", c.src)
			continue
		}
		var lerr *exact.LiteralError
		if !errors.As(err, &lerr) {
			t.Errorf("%q: error %v is not a *LiteralError", c.src, err)
			continue
		}
		if lerr.Text != c.text || lerr.Col != c.col || lerr.Kind != "integer" {
			t.Errorf("%q: want text %q at %d, got %q at %d (%s)", c.src, c.text, c.col, lerr.Text, lerr.Col, lerr.Kind)
		}
		var ierr exact.InputError
		if !errors.As(err, &ierr) || ierr.Pos() != c.col {
			t.Errorf("%q: error %v is not an InputError at %d", c.src, err, c.col)
		}
	}
}

func TestIntegerArith(t *testing.T) {
	cases := []struct {
		x, y           string
		sum, diff, prd string
		cmp            int
	}{
		{"0", "0", "0", "0", "0", 0},
		{"1", "0", "1", "1", "0", 1},
		{"0", "-1", "-1", "1", "0", 1},
		{"5", "-5", "0", "10", "-25", 1},
		{"-5", "5", "0", "-10", "-25", -1},
		{"-5", "-5", "-10", "0", "25", 0},
		{"10", "-15", "-5", "25", "-150", 1},
		{"-15", "10", "-5", "-25", "-150", -1},
		{"-15", "-10", "-25", "-5", "150", -1},
		{"-10", "-15", "-25", "5", "150", 1},
		{"999", "1", "1000", "998", "999", 1},
		{"1000", "-1", "999", "1001", "-1000", 1},
		{"-1000", "1", "-999", "-1001", "-1000", -1},
		{"99", "100", "199", "-1", "9900", -1},
	}
	for _, c := range cases {
		x, y := exact.MustParseInt(c.x), exact.MustParseInt(c.y)
		if got := x.Add(y).String(); got != c.sum {
			t.Errorf("%s + %s: want %s, got %s", c.x, c.y, c.sum, got)
		}
		if got := x.Sub(y).String(); got != c.diff {
			t.Errorf("%s - %s: want %s, got %s", c.x, c.y, c.diff, got)
		}
		if got := x.Mul(y).String(); got != c.prd {
			t.Errorf("%s * %s: want %s, got %s", c.x, c.y, c.prd, got)
		}
		if got := x.Cmp(y); got != c.cmp {
			t.Errorf("%s cmp %s: want %d, got %d", c.x, c.y, c.cmp, got)
		}
		// Operands are values and must not change.
		if x.String() != exact.MustParseInt(c.x).String() || y.String() != exact.MustParseInt(c.y).String() {
			t.Errorf("operands modified: %s, %s", x, y)
		}
	}
}

func TestIntegerZeroValue(t *testing.T) {
	var z exact.Integer
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Sign())
	require.Equal(t, "0", z.String())
	require.Equal(t, 1, z.Len())
	require.True(t, z.Equal(exact.NewInt(0)))
	require.True(t, z.Neg().Equal(z))
	require.Equal(t, "0", z.Neg().String())
	require.Equal(t, "7", z.Add(exact.NewInt(7)).String())
	require.Equal(t, "0", z.Mul(exact.NewInt(7)).String())
	v, ok := z.Int64()
	require.True(t, ok)
	require.Zero(t, v)
}

func TestIntegerProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	zero := exact.NewInt(0)
	for i := 0; i < 500; i++ {
		a, av := rndInt(rng, 40)
		b, bv := rndInt(rng, 40)
		c, _ := rndInt(rng, 40)

		require.True(t, a.Add(b).Equal(b.Add(a)), "%v + %v", a, b)
		require.True(t, a.Add(b).Add(c).Equal(a.Add(b.Add(c))), "(%v + %v) + %v", a, b, c)
		require.True(t, a.Add(a.Neg()).Equal(zero), "%v + -%v", a, a)
		require.Equal(t, "0", a.Add(a.Neg()).String())
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "%v * %v", a, b)
		require.Equal(t, a.Cmp(b), a.Sub(b).Sign(), "%v cmp %v", a, b)
		require.Equal(t, av.Cmp(bv), a.Cmp(b), "%v cmp %v", a, b)

		require.Equal(t, new(big.Int).Add(av, bv).String(), a.Add(b).String())
		require.Equal(t, new(big.Int).Sub(av, bv).String(), a.Sub(b).String())
		require.Equal(t, new(big.Int).Mul(av, bv).String(), a.Mul(b).String())
		require.Equal(t, new(big.Int).Abs(av).String(), a.Abs().String())
		require.Equal(t, new(big.Int).Abs(av).Cmp(new(big.Int).Abs(bv)), a.CmpAbs(b))

		r, err := exact.ParseInt(a.String())
		require.NoError(t, err)
		require.True(t, r.Equal(a))
	}
}

func TestIntegerShl(t *testing.T) {
	cases := []struct {
		x    string
		n    int
		want string
	}{
		{"0", 3, "0"},
		{"-12", 0, "-12"},
		{"-12", 3, "-12000"},
		{"5", 20, "500000000000000000000"},
	}
	for _, c := range cases {
		if got := exact.MustParseInt(c.x).Shl(c.n).String(); got != c.want {
			t.Errorf("%s << %d: want %s, got %s", c.x, c.n, c.want, got)
		}
	}
}
