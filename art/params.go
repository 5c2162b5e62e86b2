package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
)

// Params holds the per-artwork knobs derived from the seed. Geometry
// and shading values are Q31.32; counts are plain ints. Params are
// immutable once derived and safe to share across Args copies.
type Params struct {
	// Palette anchors: wash base, figure accent, scatter highlight
	Palette [3]canvas.RGB

	WashDecay int64 // vertical falloff rate, [1, 3)
	WashTilt  int64 // horizontal edge darkening, [0, 0.5)

	TrailCount int   // orbit trail passes
	TrailGain  int64 // additive strength per segment, [0.25, 0.6)

	RoseCount int // rose curve passes

	ScatterCount int   // gaussian particles
	ScatterSigma int64 // cluster spread, [0.12, 0.35)
	ScatterCX    int64 // cluster center offset
	ScatterCY    int64

	BandFreqX int64 // interference frequency across x, integer multiples of pi
	BandFreqY int64
	BandPhase int64 // [0, 2pi)
	BandDepth int64 // overlay opacity, [0.10, 0.30)

	VigStrength int64 // edge decay rate, [1, 2.5)
}

// Derive draws the artwork parameters from the source. The draw order
// below is a fixed contract: every layer's randomness follows these
// draws in the same stream, so inserting or reordering a draw here
// reshapes every artwork ever rendered.
func Derive(src *fixrand.Source) *Params {
	p := &Params{}

	// Palette: rotate channel dominance so the three anchors stay
	// distinct but share a family
	d := int(src.NextN(3))
	for i := range p.Palette {
		var ch [3]uint8
		ch[d%3] = uint8(src.NextRange(170, 256))
		ch[(d+1)%3] = uint8(src.NextRange(60, 171))
		ch[(d+2)%3] = uint8(src.NextRange(10, 61))
		p.Palette[i] = canvas.RGB{R: ch[0], G: ch[1], B: ch[2]}
		d++
	}

	p.WashDecay = fix64.Add(fix64.FromInt(int64(src.NextRange(1, 3))), permille(src, 0, 1000))
	p.WashTilt = permille(src, 0, 500)

	p.TrailCount = int(src.NextRange(3, 8))
	p.TrailGain = permille(src, 250, 600)

	p.RoseCount = int(src.NextRange(1, 4))

	p.ScatterCount = int(src.NextRange(900, 2100))
	p.ScatterSigma = permille(src, 120, 350)
	p.ScatterCX = permille(src, -300, 301)
	p.ScatterCY = permille(src, -300, 301)

	p.BandFreqX = fix64.FromInt(int64(src.NextRange(2, 9)))
	p.BandFreqY = fix64.FromInt(int64(src.NextRange(2, 9)))
	p.BandPhase = angle(src)
	p.BandDepth = permille(src, 100, 300)

	p.VigStrength = fix64.Add(fix64.One, permille(src, 0, 1500))

	return p
}

// permille draws a uniform Q31.32 value in [lo, hi) thousandths
func permille(src *fixrand.Source, lo, hi int32) int64 {
	return fix64.Div(fix64.FromInt(int64(src.NextRange(lo, hi))), fix64.FromInt(1000))
}

// angle draws a uniform angle in [0, 2pi) at thousandth resolution
func angle(src *fixrand.Source) int64 {
	return fix64.Mul(fix64.PiTimes2, fix64.Div(fix64.FromInt(int64(src.NextN(1000))), fix64.FromInt(1000)))
}

// norm maps pixel index i of n to a centered Q31.32 coordinate in
// (-1, 1), sampling at the pixel midpoint
func norm(i, n int) int64 {
	return fix64.Div(fix64.FromInt(int64(2*i+1-n)), fix64.FromInt(int64(n)))
}

// toPixel maps a centered coordinate back to a pixel index; values
// outside (-1, 1) land outside the surface and clip at the canvas
func toPixel(v int64, n int) int {
	half := fix64.FromInt(int64(n)) >> 1
	return int(fix64.ToInt(fix64.Mul(fix64.Add(v, fix64.One), half)))
}
