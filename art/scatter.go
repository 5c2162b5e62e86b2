package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// Gaussian scatter: a cloud of single-pixel motes clustered around a
// seed-chosen center, dense in the middle and sparse at the fringe.
// Each mote is two normal draws, dimmed by its own radial distance.

// scatterBatch particles per step keeps step cost comparable to one
// scanline of the area layers
const scatterBatch = 64

func scatterSteps(p *Params, cv *canvas.Canvas) int {
	return (p.ScatterCount + scatterBatch - 1) / scatterBatch
}

// scatterStep plants one batch of motes. The final batch may run short.
func scatterStep(p *Params, src *fixrand.Source, cv *canvas.Canvas, i int) {
	w := cv.Width()
	h := cv.Height()

	lo := i * scatterBatch
	hi := min(lo+scatterBatch, p.ScatterCount)

	for j := lo; j < hi; j++ {
		gx := src.NextGaussian()
		gy := src.NextGaussian()

		x := fix64.Add(p.ScatterCX, fix64.Mul(gx, p.ScatterSigma))
		y := fix64.Add(p.ScatterCY, fix64.Mul(gy, p.ScatterSigma))

		// Dim with squared deviation so outliers arrive faint
		r2 := fix64.Add(fix64.Mul(gx, gx), fix64.Mul(gy, gy))
		glow := fxmath.Exp(-(r2 >> 2))

		mote := p.Palette[2].Scale(fix64.Mul(glow, fix64.Half))
		cv.Blend(toPixel(x, w), toPixel(y, h), mote, canvas.BlendAdd, 0)
	}
}
