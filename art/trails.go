package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// Orbit trails: luminous elliptical arcs that precess outward or inward
// as they wind, fading along their length. Light accumulates additively
// where trails cross.

// trailSegments is the sample count per revolution. Dense enough that
// consecutive samples land within a couple of pixels on typical
// surfaces; the line tracer bridges the rest.
const trailSegments = 128

func trailSteps(p *Params, cv *canvas.Canvas) int {
	return p.TrailCount
}

// trailStep draws one complete trail. All of the trail's draws happen
// here, up front, so the step is the unit of resumption.
func trailStep(p *Params, src *fixrand.Source, cv *canvas.Canvas, i int) {
	cx := permille(src, -350, 351)
	cy := permille(src, -350, 351)
	rx := permille(src, 150, 700)
	ry := permille(src, 150, 700)
	phase := angle(src)
	turns := int(src.NextRange(1, 4))
	precess := permille(src, -200, 201)
	col := p.Palette[src.NextN(3)]

	segments := trailSegments * turns
	segFx := fix64.FromInt(int64(segments))
	sweep := fix64.Mul(fix64.PiTimes2, fix64.FromInt(int64(turns)))

	w := cv.Width()
	h := cv.Height()

	px := 0
	py := 0
	for k := 0; k <= segments; k++ {
		t := fix64.Div(fix64.FromInt(int64(k)), segFx)
		theta := fix64.Add(phase, fix64.Mul(t, sweep))

		// Radius drifts linearly with t, one precess unit per sweep
		drift := fix64.Add(fix64.One, fix64.Mul(precess, t))
		x := fix64.Add(cx, fix64.Mul(fix64.Mul(rx, drift), fxmath.Cos(theta)))
		y := fix64.Add(cy, fix64.Mul(fix64.Mul(ry, drift), fxmath.Sin(theta)))

		qx := toPixel(x, w)
		qy := toPixel(y, h)

		if k > 0 {
			// Head burns brightest, tail fades to nothing
			fade := fix64.Sub(fix64.One, t)
			seg := col.Scale(fix64.Mul(p.TrailGain, fade))
			traceLine(cv, px, py, qx, qy, seg, canvas.BlendAdd, 0)
		}
		px = qx
		py = qy
	}
}
