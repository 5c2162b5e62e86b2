package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// Interference bands: two crossed sine fields summed per pixel, tinting
// the artwork where their crests align. A low-opacity alpha veil rather
// than a paint layer, so the figures beneath stay legible.

func bandSteps(p *Params, cv *canvas.Canvas) int {
	return cv.Height()
}

// bandStep veils one row
func bandStep(p *Params, src *fixrand.Source, cv *canvas.Canvas, y int) {
	w := cv.Width()
	ny := norm(y, cv.Height())
	ay := fix64.Mul(p.BandFreqY, fix64.Mul(fix64.Pi, ny))

	for x := 0; x < w; x++ {
		nx := norm(x, w)
		ax := fix64.Add(fix64.Mul(p.BandFreqX, fix64.Mul(fix64.Pi, nx)), p.BandPhase)

		// Sum of two unit sines spans [-2, 2]; fold onto [0, 1]
		sum := fix64.Add(fxmath.Sin(ax), fxmath.Sin(ay))
		v := (sum + 2*fix64.One) >> 2

		cv.Blend(x, y, p.Palette[1], canvas.BlendAlpha, fix64.Mul(p.BandDepth, v))
	}
}
