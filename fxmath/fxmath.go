// Package fxmath provides table-driven trigonometry and transcendental
// functions over fix64 Q31.32 values: Sin and Cos from a committed
// 256-entry quarter-wave table, a digit-by-digit square root, Turner's
// binary logarithm, and a Maclaurin exponential.
//
// The sine table is versioned source data, not a runtime computation;
// regenerating it (see cmd/gen-sinlut) must reproduce the file exactly.
// Every function here is deterministic to the bit across platforms.
//
// Domain violations (negative Sqrt argument, non-positive Log2 argument)
// panic. Saturation inside the arithmetic is silent, as in fix64.
package fxmath

//go:generate go run github.com/lodenkai/etchling/cmd/gen-sinlut -out sinlut.go

import (
	"github.com/lodenkai/etchling/fix64"
)

// largePi is pi * 2^61 truncated. The cascade of shrinking moduli in
// clampAngle folds very large angles onto one turn while keeping 61
// bits of pi, where a single modulo by the 32-bit-scaled 2pi would
// shed precision once per discarded turn.
const largePi = 7244019458077122842

// lutInterval converts a first-quadrant angle into table steps,
// (lutSize-1) / (pi/2).
var lutInterval = fix64.Div(fix64.FromInt(lutSize-1), fix64.PiOver2)

// Sin returns the sine of the angle x in radians.
//
// The angle folds into [0, pi/2) with mirror flags, the table is read
// at the rounded index and at the neighbor toward the residual error,
// and the result interpolates by the residual scaled by the difference
// between those two entries. The neighbor-difference form is the
// committed precision contract, not a shortcut for a weighted average.
func Sin(x int64) int64 {
	clamped, flipH, flipV := clampAngle(x)

	rawIndex := fix64.FastMul(clamped, lutInterval)
	rounded := fix64.Round(rawIndex)
	indexError := fix64.FastSub(rawIndex, rounded)

	idx := fix64.ToInt(rounded)
	dir := fix64.Sign(indexError)

	var nearest, second int64
	if flipH {
		nearest = SinLUT[lutSize-1-idx]
		second = SinLUT[lutSize-1-idx-dir]
	} else {
		nearest = SinLUT[idx]
		second = SinLUT[idx+dir]
	}

	delta := fix64.FastMul(indexError, fix64.FastAbs(fix64.FastSub(nearest, second)))
	interpolated := nearest + delta
	if flipH {
		interpolated = nearest - delta
	}
	if flipV {
		interpolated = -interpolated
	}
	return interpolated
}

// Cos returns the cosine of the angle x in radians, evaluated as a
// phase-shifted sine so the table stays single-purpose. The shift
// direction depends on the sign of x to stay clear of the raw range
// ends.
func Cos(x int64) int64 {
	rawAngle := x + fix64.PiOver2
	if x > 0 {
		rawAngle = x + (-fix64.Pi - fix64.PiOver2)
	}
	return Sin(rawAngle)
}

// clampAngle reduces an arbitrary angle to [0, pi/2) plus the mirror
// flags for the quadrant it came from: flipV for the second half-turn,
// flipH for the second quarter of a half-turn.
func clampAngle(angle int64) (clamped int64, flipH, flipV bool) {
	clamped2Pi := angle
	for i := 0; i < 29; i++ {
		clamped2Pi %= largePi >> uint(i)
	}
	if angle < 0 {
		clamped2Pi += fix64.PiTimes2
	}

	flipV = clamped2Pi >= fix64.Pi
	clampedPi := clamped2Pi
	for clampedPi >= fix64.Pi {
		clampedPi -= fix64.Pi
	}

	flipH = clampedPi >= fix64.PiOver2
	clamped = clampedPi
	if clamped >= fix64.PiOver2 {
		clamped -= fix64.PiOver2
	}
	return clamped, flipH, flipV
}
