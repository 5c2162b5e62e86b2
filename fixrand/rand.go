// Package fixrand implements the 56-word subtractive lagged-Fibonacci
// generator of the legacy .NET runtime, bit for bit, with bounded draws
// rescaled through fix64 arithmetic and a Box-Muller Gaussian sampler
// built on the fxmath primitives.
//
// The seed-table construction and draw sequence are a wire format: two
// independently built Sources with the same seed must agree on every
// draw forever, across platforms and releases. The construction is
// therefore a literal port, quirks included, not a cleaned-up
// equivalent.
//
// A Source is owned by a single render stream and is not safe for
// concurrent use; independent streams hold independent Sources. There
// is no package-level generator on purpose.
package fixrand

import (
	"math"

	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fxmath"
)

const (
	mbig  = math.MaxInt32
	mseed = 161803398

	// mbigFx is mbig in Q31.32, the denominator mapping raw draws
	// onto [0, 1).
	mbigFx = int64(mbig) << fix64.Shift
)

// Source holds the generator state: 55 live words (slot 0 stays
// unused), and two cursors lagging 34 apart in draw order.
type Source struct {
	seedArray [56]int32
	inext     int32
	inextp    int32
}

// New builds a Source from a 32-bit seed. Slot 55 anchors at mseed
// less the seed's magnitude, a stride-21 walk scatters the running
// differences across the table, then four stride-30 passes mix every
// slot. The arithmetic wraps at 32 bits exactly where the original
// does; any deviation here changes every draw that follows.
func New(seed int32) *Source {
	subtraction := seed
	if subtraction == math.MinInt32 {
		subtraction = math.MaxInt32
	} else if subtraction < 0 {
		subtraction = -subtraction
	}

	s := &Source{}
	mj := int32(mseed) - subtraction
	s.seedArray[55] = mj
	mk := int32(1)
	for i := int32(1); i < 55; i++ {
		ii := (21 * i) % 55
		s.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += mbig
		}
		mj = s.seedArray[ii]
	}
	for k := 0; k < 4; k++ {
		for i := 1; i < 56; i++ {
			s.seedArray[i] -= s.seedArray[1+(i+30)%55]
			if s.seedArray[i] < 0 {
				s.seedArray[i] += mbig
			}
		}
	}
	s.inext = 0
	s.inextp = 21
	return s
}

// Next returns the next raw draw, uniform on [0, mbig). Both cursors
// advance, wrapping past slot 55 to slot 1, and the freshly computed
// difference is stored back in place.
func (s *Source) Next() int32 {
	i := s.inext + 1
	if i >= 56 {
		i = 1
	}
	j := s.inextp + 1
	if j >= 56 {
		j = 1
	}

	v := s.seedArray[i] - s.seedArray[j]
	if v == mbig {
		v--
	}
	if v < 0 {
		v += mbig
	}
	s.seedArray[i] = v

	s.inext = i
	s.inextp = j
	return v
}

// NextN returns a draw uniform on [0, max), rescaling one raw draw by
// fixed-point division and multiplication rather than a modulo, which
// keeps the distribution shape of the original generator. NextN(0)
// returns 0. Panics if max is negative.
func (s *Source) NextN(max int32) int32 {
	if max < 0 {
		panic("fixrand: negative bound")
	}
	sample := fix64.Div(fix64.FromInt(int64(s.Next())), mbigFx)
	return int32(fix64.ToInt(fix64.Mul(sample, fix64.FromInt(int64(max)))))
}

// NextRange returns a draw uniform on [min, max). Panics unless max
// exceeds min. Ranges wider than an int32 synthesize a signed sample
// from two draws, the second draw's parity choosing the sign, then
// rescale on a 128-bit intermediate since the range itself overflows
// the fix64 integer domain.
func (s *Source) NextRange(min, max int32) int32 {
	if max <= min {
		panic("fixrand: max must exceed min")
	}
	r := int64(max) - int64(min)
	if r <= int64(math.MaxInt32) {
		return min + s.NextN(int32(r))
	}

	result := int64(s.Next())
	if s.Next()%2 == 0 {
		result = -result
	}
	// Recenter onto [0, 2*mbig-1) and divide out to a Q31.32 sample in
	// [0, 1); num stays under 2^32 so the shifted dividend fits in a
	// uint64. The scale by the range runs through MulWide: d*r can
	// exceed 63 bits on this path, and the 128-bit product keeps the
	// fold exact.
	num := uint64(result + mbig - 1)
	den := uint64(2*int64(mbig) - 1)
	d := int64((num << fix64.Shift) / den)
	return int32(int64(min) + fix64.MulWide(d, r))
}

// NextGaussian returns a Q31.32 draw from the standard normal
// distribution via the Box-Muller transform: two raw draws map onto
// (0, 1], and the result is sqrt(-2*ln(u1)) * sin(2pi*u2). Every
// rounding decision beneath — division, logarithm, square root, table
// interpolation — participates in the reproducibility contract.
func (s *Source) NextGaussian() int64 {
	u1 := fix64.Sub(fix64.One, fix64.Div(fix64.FromInt(int64(s.Next())), mbigFx))
	u2 := fix64.Sub(fix64.One, fix64.Div(fix64.FromInt(int64(s.Next())), mbigFx))

	r := fxmath.Sqrt(fix64.Mul(fix64.FromInt(-2), fxmath.Log(u1)))
	theta := fix64.Mul(fix64.PiTimes2, u2)
	return fix64.Mul(r, fxmath.Sin(theta))
}
