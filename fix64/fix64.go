// Package fix64 implements signed Q31.32 fixed-point arithmetic on raw
// int64 values: one sign bit, 31 integer bits, 32 fractional bits.
//
// The checked operations (Add, Sub, Mul, Div, Abs) saturate to Max or Min
// on overflow instead of wrapping. The Fast variants wrap and exist for
// intermediate values the caller has already bounded. Division by zero is
// the only arithmetic panic; saturation is a defined result, never an
// error.
//
// Everything here is integer-only and bit-identical across platforms.
// FromFloat and ToFloat serve display and configuration boundaries and
// must stay out of any path whose output has to reproduce exactly.
package fix64

import (
	"math"
	"math/bits"
)

// Q31.32 layout
const (
	Shift = 32
	One   = 1 << Shift
	Half  = 1 << (Shift - 1)
	Mask  = One - 1

	Max = math.MaxInt64
	Min = math.MinInt64
)

// Transcendental constants, truncated (not rounded) at the 32nd
// fractional bit.
const (
	Pi       = 13493037704  // pi * 2^32
	PiOver2  = 6746518852   // Pi / 2, exact in this representation
	PiTimes2 = 26986075409  // 2*pi truncated independently; not 2*Pi
	Ln2      = 2977044471   // ln(2) * 2^32
	E        = 11674931554  // e * 2^32
	Log2Max  = 0x1F00000000 // log2 of the largest integer, 31.0
	Log2Min  = -0x2000000000
	LnMax    = 92288378626  // ln(2^31); Exp saturates above this
	LnMin    = -95265423098 // ln(2^-32); Exp flushes to zero below this
)

// --- Conversions ---

func FromInt(i int64) int64     { return i << Shift }
func ToInt(f int64) int64       { return f >> Shift }
func FromFloat(f float64) int64 { return int64(f * One) }
func ToFloat(f int64) float64   { return float64(f) / One }

// --- Saturating arithmetic ---

// Add returns x+y, clamped to Max or Min on overflow.
func Add(x, y int64) int64 {
	sum := x + y
	// Overflow iff the operands share a sign the sum does not.
	if (^(x^y)&(x^sum))&Min != 0 {
		if x > 0 {
			return Max
		}
		return Min
	}
	return sum
}

// Sub returns x-y, clamped to Max or Min on overflow.
func Sub(x, y int64) int64 {
	diff := x - y
	// Overflow iff the operand signs differ and the result took y's sign.
	if ((x^y)&(x^diff))&Min != 0 {
		if x < 0 {
			return Min
		}
		return Max
	}
	return diff
}

// addCarry accumulates partial products for Mul, recording whether any
// step left the int64 range.
func addCarry(x, y int64, overflow *bool) int64 {
	sum := x + y
	*overflow = *overflow || (x^y^sum)&Min != 0
	return sum
}

// Mul returns x*y scaled back into Q31.32, clamped to Max or Min on
// overflow. Each operand splits into 32-bit halves so all four partial
// products fit in 64 bits; no 128-bit intermediate is needed.
func Mul(x, y int64) int64 {
	xlo := uint64(x & Mask)
	xhi := x >> Shift
	ylo := uint64(y & Mask)
	yhi := y >> Shift

	lolo := xlo * ylo
	lohi := int64(xlo) * yhi
	hilo := xhi * int64(ylo)
	hihi := xhi * yhi

	loResult := int64(lolo >> Shift)
	hiResult := hihi << Shift

	overflow := false
	sum := addCarry(loResult, lohi, &overflow)
	sum = addCarry(sum, hilo, &overflow)
	sum = addCarry(sum, hiResult, &overflow)

	opSignsEqual := (x^y)&Min == 0

	// Equal signs cannot produce a negative result, and opposite signs
	// cannot produce a positive one; either means the sum wrapped.
	if opSignsEqual {
		if sum < 0 || (overflow && x > 0) {
			return Max
		}
	} else {
		if sum > 0 {
			return Min
		}
	}

	// The top half of hihi must be pure sign extension or the integer
	// part alone has overflowed.
	topCarry := hihi >> Shift
	if topCarry != 0 && topCarry != -1 {
		if opSignsEqual {
			return Max
		}
		return Min
	}

	if !opSignsEqual {
		var posOp, negOp int64
		if x > y {
			posOp, negOp = x, y
		} else {
			posOp, negOp = y, x
		}
		// Both magnitudes above one and a sum past the negative operand
		// means the negative overflow slipped through the carry checks.
		if sum > negOp && negOp < -One && posOp > One {
			return Min
		}
	}

	return sum
}

// Div returns x/y scaled into Q31.32 via binary long division on the
// magnitudes, rounding the final bit half-up and clamping to Max or Min
// on overflow. Panics on a zero divisor: that is a domain error, not a
// saturation event.
func Div(x, y int64) int64 {
	if y == 0 {
		panic("fix64: division by zero")
	}

	remainder := uint64(x)
	if x < 0 {
		remainder = uint64(-x)
	}
	divider := uint64(y)
	if y < 0 {
		divider = uint64(-y)
	}
	quotient := uint64(0)
	bitPos := 33

	// A divisor divisible by 2^4 can be pre-shifted instead of walked.
	for divider&0xF == 0 && bitPos >= 4 {
		divider >>= 4
		bitPos -= 4
	}

	for remainder != 0 && bitPos >= 0 {
		shift := bits.LeadingZeros64(remainder)
		if shift > bitPos {
			shift = bitPos
		}
		remainder <<= uint(shift)
		bitPos -= shift

		div := remainder / divider
		remainder = remainder % divider
		quotient += div << uint(bitPos)

		if div & ^(^uint64(0)>>uint(bitPos)) != 0 {
			if (x^y)&Min == 0 {
				return Max
			}
			return Min
		}

		remainder <<= 1
		bitPos--
	}

	// One extra quotient bit was produced; fold it back as round half up.
	quotient++
	result := int64(quotient >> 1)
	if (x^y)&Min != 0 {
		result = -result
	}
	return result
}

// --- Wrapping variants ---

// FastAdd wraps on overflow. For operands the caller has bounded.
func FastAdd(x, y int64) int64 { return x + y }

// FastSub wraps on overflow.
func FastSub(x, y int64) int64 { return x - y }

// FastMul returns x*y scaled into Q31.32 with no overflow checks.
func FastMul(x, y int64) int64 {
	xlo := uint64(x & Mask)
	xhi := x >> Shift
	ylo := uint64(y & Mask)
	yhi := y >> Shift

	lolo := xlo * ylo
	lohi := int64(xlo) * yhi
	hilo := xhi * int64(ylo)
	hihi := xhi * yhi

	return int64(lolo>>Shift) + lohi + hilo + hihi<<Shift
}

// MulWide returns x*y scaled into Q31.32 through a full 128-bit
// product, rounding toward negative infinity. Agrees with FastMul on
// every input; the 128-bit form is kept for call sites that reason
// about headroom explicitly, notably the logarithm's repeated squaring.
func MulWide(x, y int64) int64 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if x < 0 {
		hi -= uint64(y)
	}
	if y < 0 {
		hi -= uint64(x)
	}
	return int64(hi<<Shift | lo>>Shift)
}

// --- Rounding and sign ---

// Floor rounds toward negative infinity.
func Floor(x int64) int64 { return x &^ Mask }

// Round rounds to the nearest integer value; exact halves go to the
// nearest even integer so repeated rounding cannot drift.
func Round(x int64) int64 {
	frac := x & Mask
	floor := Floor(x)
	if frac < Half {
		return floor
	}
	if frac > Half {
		return floor + One
	}
	if floor&One == 0 {
		return floor
	}
	return floor + One
}

// Sign returns -1, 0 or 1 as a plain integer, not a fixed-point value.
func Sign(x int64) int64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Abs returns the magnitude of x, saturating at Min which has no
// positive counterpart.
func Abs(x int64) int64 {
	if x == Min {
		return Max
	}
	mask := x >> 63
	return (x + mask) ^ mask
}

// FastAbs is branchless and wraps on Min.
func FastAbs(x int64) int64 {
	mask := x >> 63
	return (x + mask) ^ mask
}
