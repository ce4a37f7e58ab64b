package simplex

import (
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/zephyrtronium/bigfloat"
)

// RealDigits is the precision in decimal digits of Real values, the
// coefficient size of an IEEE 754 decimal128.
const RealDigits = 34

// binPrec is the binary precision used for transcendental functions. It holds
// RealDigits decimal digits.
const binPrec = 113

// decctx is the decimal128 arithmetic context. Nothing traps: division by
// zero gives an infinity and invalid operations give NaN, which Numeric
// absorbs.
var decctx = func() *apd.Context {
	c := apd.BaseContext.WithPrecision(RealDigits)
	c.MaxExponent = 6144
	c.MinExponent = -6143
	c.Rounding = apd.RoundHalfEven
	c.Traps = 0
	return c
}()

// Numeric is a number in the numeric tower: a 64-bit Integer, a
// fixed-precision decimal Real, or NaN. The zero value is the Integer 0.
//
// Numeric values are immutable. Arithmetic always produces new values.
type Numeric struct {
	kind numKind
	i    int64
	r    *apd.Decimal
}

type numKind int8

const (
	numInt numKind = iota
	numReal
	numNaN
)

// IntNumeric returns an Integer.
func IntNumeric(i int64) Numeric {
	return Numeric{kind: numInt, i: i}
}

// NaN returns the not-a-number value. NaN absorbs every arithmetic operation.
func NaN() Numeric {
	return Numeric{kind: numNaN}
}

// ParseNumeric converts text to a number. It tries an integer first, then a
// decimal real. Text that is neither is NaN; ParseNumeric never fails.
func ParseNumeric(s string) Numeric {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntNumeric(i)
	}
	return parseReal(s)
}

// parseReal parses s as a Real rounded to RealDigits without simplifying it.
func parseReal(s string) Numeric {
	switch s {
	case "+Inf", "+inf":
		return inf(false)
	case "-Inf", "-inf":
		return inf(true)
	}
	// Parsing in decctx rounds to RealDigits. Exponents past its range give
	// infinities or zeros rather than errors.
	d, _, err := decctx.NewFromString(s)
	if err != nil {
		return NaN()
	}
	return fromDecimal(d)
}

// inf returns an infinite Real.
func inf(neg bool) Numeric {
	return Numeric{kind: numReal, r: &apd.Decimal{Form: apd.Infinite, Negative: neg}}
}

// fromDecimal wraps a decimal result without simplifying it. Decimal NaNs
// become NaN.
func fromDecimal(d *apd.Decimal) Numeric {
	if d.Form == apd.NaN || d.Form == apd.NaNSignaling {
		return NaN()
	}
	return Numeric{kind: numReal, r: d}
}

// realFromInt promotes an integer to a Real by way of its decimal text.
func realFromInt(i int64) *apd.Decimal {
	n := parseReal(strconv.FormatInt(i, 10))
	if n.kind != numReal {
		panic("simplex: integer " + strconv.FormatInt(i, 10) + " did not parse as real")
	}
	return n.r
}

// real returns n as a decimal. n must not be NaN.
func (n Numeric) real() *apd.Decimal {
	switch n.kind {
	case numInt:
		return realFromInt(n.i)
	case numReal:
		return n.r
	default:
		panic("simplex: real value of NaN")
	}
}

// Simplify canonicalizes n. A Real whose decimal value is an integer that
// fits in 64 bits becomes that Integer. Simplify is idempotent.
func (n Numeric) Simplify() Numeric {
	if n.kind != numReal || n.r.Form != apd.Finite {
		return n
	}
	var z apd.Decimal
	z.Reduce(n.r)
	// Decide from the exponent so that huge magnitudes are never expanded.
	if z.Exponent < 0 || int64(z.Exponent)+z.NumDigits() > 19 {
		return n
	}
	i, err := z.Int64()
	if err != nil {
		return n
	}
	return IntNumeric(i)
}

// IsInt returns whether n simplifies to an Integer.
func (n Numeric) IsInt() bool {
	return n.Simplify().kind == numInt
}

// IsReal returns whether n simplifies to a Real.
func (n Numeric) IsReal() bool {
	return n.Simplify().kind == numReal
}

// IsNaN returns whether n is NaN.
func (n Numeric) IsNaN() bool {
	return n.kind == numNaN
}

// AsInt returns the value of n if it simplifies to an Integer.
func (n Numeric) AsInt() (int64, bool) {
	s := n.Simplify()
	if s.kind != numInt {
		return 0, false
	}
	return s.i, true
}

// AsReal returns a copy of the value of n if it simplifies to a Real.
func (n Numeric) AsReal() (*apd.Decimal, bool) {
	s := n.Simplify()
	if s.kind != numReal {
		return nil, false
	}
	return new(apd.Decimal).Set(s.r), true
}

// Capacity returns a size hint in bits for n's kind. It is used only to size
// buffers.
func (n Numeric) Capacity() int {
	switch n.kind {
	case numInt:
		return 64
	case numReal:
		return 128
	default:
		return 8
	}
}

// Head returns the qualified name of n's kind.
func (n Numeric) Head() string {
	switch n.kind {
	case numInt:
		return "Simplex`Integer"
	case numReal:
		return "Simplex`Real"
	default:
		return "Simplex`NaN"
	}
}

// String renders n in its canonical form. Reals drop trailing zeros and use
// an exponent for large magnitudes, like 1E+30; infinities are +Inf and -Inf.
func (n Numeric) String() string {
	n = n.Simplify()
	switch n.kind {
	case numInt:
		return strconv.FormatInt(n.i, 10)
	case numReal:
		if n.r.Form == apd.Infinite {
			if n.r.Negative {
				return "-Inf"
			}
			return "+Inf"
		}
		var z apd.Decimal
		z.Reduce(n.r)
		return z.String()
	default:
		return "NaN"
	}
}

// Equal returns whether n and m have the same canonical value. NaN equals NaN.
func (n Numeric) Equal(m Numeric) bool {
	a, b := n.Simplify(), m.Simplify()
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case numInt:
		return a.i == b.i
	case numReal:
		return a.r.Cmp(b.r) == 0
	default:
		return true
	}
}

// Add returns n + m.
func (n Numeric) Add(m Numeric) Numeric {
	if n.kind == numNaN || m.kind == numNaN {
		return NaN()
	}
	if n.kind == numInt && m.kind == numInt {
		s := n.i + m.i
		if (m.i > 0 && s < n.i) || (m.i < 0 && s > n.i) {
			return realop(decctx.Add, n.real(), m.real())
		}
		return IntNumeric(s)
	}
	return realop(decctx.Add, n.real(), m.real())
}

// Sub returns n - m.
func (n Numeric) Sub(m Numeric) Numeric {
	if n.kind == numNaN || m.kind == numNaN {
		return NaN()
	}
	if n.kind == numInt && m.kind == numInt {
		d := n.i - m.i
		if (m.i > 0 && d > n.i) || (m.i < 0 && d < n.i) {
			return realop(decctx.Sub, n.real(), m.real())
		}
		return IntNumeric(d)
	}
	return realop(decctx.Sub, n.real(), m.real())
}

// Mul returns n * m.
func (n Numeric) Mul(m Numeric) Numeric {
	if n.kind == numNaN || m.kind == numNaN {
		return NaN()
	}
	if n.kind == numInt && m.kind == numInt {
		if p, ok := mulInt(n.i, m.i); ok {
			return IntNumeric(p)
		}
	}
	return realop(decctx.Mul, n.real(), m.real())
}

// Div returns n / m. Division of two Integers goes through float64 and so is
// only as precise as a float64; the quotient is reparsed as a Real and
// simplified. Division of a nonzero number by zero is an infinity, and 0/0 is
// NaN.
func (n Numeric) Div(m Numeric) Numeric {
	if n.kind == numNaN || m.kind == numNaN {
		return NaN()
	}
	if n.kind == numInt && m.kind == numInt {
		q := float64(n.i) / float64(m.i)
		return parseReal(strconv.FormatFloat(q, 'g', -1, 64)).Simplify()
	}
	return realop(decctx.Quo, n.real(), m.real())
}

// Pow returns n raised to the power m. Integer powers are computed by
// repeated squaring, exactly when both operands are Integers and the result
// fits. Other powers use a positive real base; a negative base with a
// non-integer exponent is NaN, as are non-integer powers with an infinite
// operand.
func (n Numeric) Pow(m Numeric) Numeric {
	x, y := n.Simplify(), m.Simplify()
	if x.kind == numNaN || y.kind == numNaN {
		return NaN()
	}
	if y.kind == numInt {
		if x.kind == numInt && y.i >= 0 {
			if p, ok := powInt(x.i, y.i); ok {
				return IntNumeric(p)
			}
		}
		return powReal(x.real(), y.i)
	}
	b := x.real()
	if b.Form == apd.Infinite || y.r.Form == apd.Infinite {
		return NaN()
	}
	switch b.Sign() {
	case -1:
		return NaN()
	case 0:
		if y.r.Sign() > 0 {
			return IntNumeric(0)
		}
		return inf(false)
	}
	// Results far outside the exponent range are decided without bigfloat,
	// which would otherwise work through an enormous Exp.
	bf, _ := b.Float64()
	yf, _ := y.r.Float64()
	if m := math.Log10(bf) * yf; m > 2*float64(decctx.MaxExponent) {
		return inf(false)
	} else if m < 2*float64(decctx.MinExponent) {
		return IntNumeric(0)
	}
	xb, yb := toBig(b), toBig(y.r)
	return guard(func() *big.Float {
		return bigfloat.Pow(new(big.Float).SetPrec(binPrec), xb, yb)
	})
}

// mulInt multiplies two integers and reports whether the product fits.
func mulInt(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

// powInt computes b^e for e >= 0 and reports whether the result fits.
func powInt(b, e int64) (int64, bool) {
	r := int64(1)
	for e > 0 {
		var ok bool
		if e&1 != 0 {
			if r, ok = mulInt(r, b); !ok {
				return 0, false
			}
		}
		e >>= 1
		if e > 0 {
			if b, ok = mulInt(b, b); !ok {
				return 0, false
			}
		}
	}
	return r, true
}

// powReal computes b^e for any integer e. Each step rounds to RealDigits, so
// magnitudes past the decimal128 range become infinities.
func powReal(b *apd.Decimal, e int64) Numeric {
	r := apd.New(1, 0)
	x := new(apd.Decimal).Set(b)
	// Negate in uint64 so that MinInt64 keeps its magnitude.
	k := uint64(e)
	if e < 0 {
		k = -k
	}
	for k > 0 {
		if k&1 != 0 {
			if _, err := decctx.Mul(r, r, x); err != nil {
				return NaN()
			}
		}
		k >>= 1
		if k > 0 {
			if _, err := decctx.Mul(x, x, x); err != nil {
				return NaN()
			}
		}
	}
	if e < 0 {
		if _, err := decctx.Quo(r, apd.New(1, 0), r); err != nil {
			return NaN()
		}
	}
	return fromDecimal(r).Simplify()
}

// realop applies a binary decimal operation in the decimal128 context.
func realop(f func(d, x, y *apd.Decimal) (apd.Condition, error), x, y *apd.Decimal) Numeric {
	d := new(apd.Decimal)
	if _, err := f(d, x, y); err != nil {
		return NaN()
	}
	return fromDecimal(d).Simplify()
}

// toBig converts a finite decimal to a binary float for the transcendental
// functions.
func toBig(d *apd.Decimal) *big.Float {
	f, _, err := big.ParseFloat(d.String(), 10, binPrec, big.ToNearestEven)
	if err != nil {
		panic("simplex: decimal " + d.String() + " did not parse as binary")
	}
	return f
}

// guard evaluates a binary float computation and rounds its result back to a
// Real, converting big.ErrNaN panics into NaN. The result is simplified.
func guard(f func() *big.Float) (n Numeric) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(big.ErrNaN); !ok {
			panic(r)
		}
		n = NaN()
	}()
	return parseReal(f().Text('g', RealDigits)).Simplify()
}
