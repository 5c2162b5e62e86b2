package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// The wash is the background: a vertical two-anchor gradient with
// exponential easing, darkened toward the side edges. It covers every
// pixel, so the canvas needs no separate clear.

func washSteps(p *Params, cv *canvas.Canvas) int {
	return cv.Height()
}

// washStep paints one row. Row brightness follows exp(-decay * y),
// renormalized so the top row sits exactly at the top anchor and the
// bottom row at the bottom anchor.
func washStep(p *Params, src *fixrand.Source, cv *canvas.Canvas, y int) {
	h := cv.Height()
	w := cv.Width()

	yn := int64(0)
	if h > 1 {
		yn = fix64.Div(fix64.FromInt(int64(y)), fix64.FromInt(int64(h-1)))
	}

	// ease runs 1 -> exp(-decay) down the surface; floor it back to
	// a full [0, 1] ramp
	ease := fxmath.Exp(-fix64.Mul(p.WashDecay, yn))
	floor := fxmath.Exp(-p.WashDecay)
	t := fix64.Div(fix64.Sub(ease, floor), fix64.Sub(fix64.One, floor))

	top := p.Palette[0]
	bottom := p.Palette[2].Scale(fix64.Half)
	row := bottom.Lerp(top, t)

	for x := 0; x < w; x++ {
		nx := norm(x, w)
		shade := fix64.Sub(fix64.One, fix64.Mul(p.WashTilt, fix64.Abs(nx)))
		cv.Set(x, y, row.Scale(shade))
	}
}
