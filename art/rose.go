package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// Rose curves: r = scale * cos(k*theta) traced through a full
// revolution, composited with per-channel max so petals glow over the
// wash without burning out where they overlap.

// roseSamples per revolution; petal edges bend fast, so sample finer
// than the trails
const roseSamples = 720

func roseSteps(p *Params, cv *canvas.Canvas) int {
	return p.RoseCount
}

// roseStep draws one complete rose
func roseStep(p *Params, src *fixrand.Source, cv *canvas.Canvas, i int) {
	k := fix64.FromInt(int64(src.NextRange(2, 8)))
	scale := permille(src, 250, 850)
	rot := angle(src)
	cx := permille(src, -250, 251)
	cy := permille(src, -250, 251)
	col := p.Palette[src.NextN(3)]

	w := cv.Width()
	h := cv.Height()

	px := 0
	py := 0
	for j := 0; j <= roseSamples; j++ {
		t := fix64.Div(fix64.FromInt(int64(j)), fix64.FromInt(roseSamples))
		theta := fix64.Mul(fix64.PiTimes2, t)

		rad := fix64.Mul(scale, fxmath.Cos(fix64.Mul(k, theta)))
		ang := fix64.Add(theta, rot)
		x := fix64.Add(cx, fix64.Mul(rad, fxmath.Cos(ang)))
		y := fix64.Add(cy, fix64.Mul(rad, fxmath.Sin(ang)))

		qx := toPixel(x, w)
		qy := toPixel(y, h)

		if j > 0 {
			// Brightness tracks radial reach: petal tips glow, the
			// center knot stays subdued
			reach := fix64.Div(fix64.Abs(rad), scale)
			bright := fix64.Add(fix64.Half, reach>>1)
			traceLine(cv, px, py, qx, qy, col.Scale(bright), canvas.BlendMax, 0)
		}
		px = qx
		py = qy
	}
}
