package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// Vignette: the finishing pass. Pixels keep full brightness inside a
// central plateau, then decay exponentially with radial distance,
// pulling the eye inward and hiding clipped figure edges.

// vigPlateau is the radius inside which the vignette has no effect
const vigPlateau = fix64.One / 4

func vignetteSteps(p *Params, cv *canvas.Canvas) int {
	return cv.Height()
}

// vignetteStep darkens one row in place
func vignetteStep(p *Params, src *fixrand.Source, cv *canvas.Canvas, y int) {
	w := cv.Width()
	ny := norm(y, cv.Height())
	yy := fix64.Mul(ny, ny)

	for x := 0; x < w; x++ {
		nx := norm(x, w)
		d := fxmath.Sqrt(fix64.Add(fix64.Mul(nx, nx), yy))

		dd := fix64.Sub(d, vigPlateau)
		if dd <= 0 {
			continue
		}
		fade := fxmath.Exp(-fix64.Mul(p.VigStrength, dd))
		cv.Set(x, y, cv.At(x, y).Scale(fade))
	}
}
