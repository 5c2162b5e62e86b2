package fxmath

import "github.com/lodenkai/etchling/fix64"

// Log2 returns the base-2 logarithm of x by Turner's bit-by-bit method:
// normalize x into [1,2) while the doublings and halvings accumulate
// the integer part, then square the mantissa once per fractional bit,
// halving it back whenever it crosses 2. Panics if x is not positive.
//
// The squarings run through MulWide; the 128-bit intermediate is the
// stated headroom contract for this routine.
func Log2(x int64) int64 {
	if x <= 0 {
		panic("fxmath: non-positive argument to Log2")
	}

	b := int64(1) << (fix64.Shift - 1)
	y := int64(0)

	rawX := x
	for rawX < fix64.One {
		rawX <<= 1
		y -= fix64.One
	}
	for rawX >= fix64.One<<1 {
		rawX >>= 1
		y += fix64.One
	}

	z := rawX
	for i := 0; i < fix64.Shift; i++ {
		z = fix64.MulWide(z, z)
		if z >= fix64.One<<1 {
			z >>= 1
			y += b
		}
		b >>= 1
	}
	return y
}

// Log returns the natural logarithm of x, Log2 rescaled by ln 2.
// Panics if x is not positive.
func Log(x int64) int64 {
	return fix64.MulWide(Log2(x), fix64.Ln2)
}

// Exp returns e**x. Inputs at or above LnMax saturate to Max, inputs at
// or below LnMin flush to zero. Negative arguments evaluate through the
// reciprocal of the positive series, which converges much faster.
//
// The Maclaurin sum runs each term as term*x/n with the checked
// operations, so a term that would overflow clamps instead of wrapping,
// and stops once a term underflows to zero or after 40 terms.
func Exp(x int64) int64 {
	if x == 0 {
		return fix64.One
	}
	if x == fix64.One {
		return fix64.E
	}
	if x >= fix64.LnMax {
		return fix64.Max
	}
	if x <= fix64.LnMin {
		return 0
	}

	neg := x < 0
	if neg {
		x = -x
	}

	result := fix64.Add(x, fix64.One)
	term := x

	for i := int64(2); i < 40; i++ {
		term = fix64.Mul(x, fix64.Div(term, fix64.FromInt(i)))
		result = fix64.Add(result, term)
		if term == 0 {
			break
		}
	}

	if neg {
		result = fix64.Div(fix64.One, result)
	}
	return result
}
