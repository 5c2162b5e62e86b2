// Package art renders deterministic generative artworks. An artwork is
// fully determined by its int32 seed: the seed builds a fixrand.Source,
// the source derives the per-artwork Params, and six layers paint the
// canvas in fixed order using only fix64 arithmetic. The same seed
// yields a byte-identical canvas on every platform, whether rendered
// in one call or resumed across many.
package art

import (
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/fixrand"
)

// layer is one paint pass, split into discrete resumable steps. steps
// must be pure: it is re-evaluated on every Render call and never
// consumes draws. All randomness happens inside step, scoped to that
// step, so the continuation cursor is the only scheduling state.
type layer struct {
	name  string
	steps func(p *Params, cv *canvas.Canvas) int
	step  func(p *Params, src *fixrand.Source, cv *canvas.Canvas, i int)
}

// layers paint back to front. The order is part of the artwork
// contract: reordering changes every seed's output.
var layers = [...]layer{
	{"wash", washSteps, washStep},
	{"trails", trailSteps, trailStep},
	{"rose", roseSteps, roseStep},
	{"scatter", scatterSteps, scatterStep},
	{"bands", bandSteps, bandStep},
	{"vignette", vignetteSteps, vignetteStep},
}

// Cursor marks a position in the layer schedule: the next step to run.
type Cursor struct {
	Layer int
	Step  int
}

// Args carries one artwork's render state across chunked Render calls.
// Start a stream with just Seed and Canvas set; Render fills in Source,
// Params, and Cursor and hands the updated Args back. Callers treat the
// filled-in fields as opaque continuation state: mutating them, or
// resizing the canvas between chunks, forfeits determinism.
type Args struct {
	Seed   int32
	Canvas *canvas.Canvas
	Source *fixrand.Source
	Params *Params
	Cursor Cursor
}

// Render advances the artwork by up to budget steps and reports whether
// it finished. Equal seeds produce equal canvases regardless of how the
// work is split across calls, because step order and draw order never
// depend on the budget. A non-positive budget performs no work.
func Render(args Args, budget int) (Args, bool) {
	if args.Canvas == nil {
		panic("art: nil canvas")
	}
	if args.Source == nil {
		args.Source = fixrand.New(args.Seed)
		args.Params = Derive(args.Source)
		args.Cursor = Cursor{}
	}

	for {
		// Roll past exhausted layers without consuming budget
		for args.Cursor.Layer < len(layers) &&
			args.Cursor.Step >= layers[args.Cursor.Layer].steps(args.Params, args.Canvas) {
			args.Cursor.Layer++
			args.Cursor.Step = 0
		}
		if args.Cursor.Layer >= len(layers) {
			return args, true
		}
		if budget <= 0 {
			return args, false
		}

		ly := layers[args.Cursor.Layer]
		ly.step(args.Params, args.Source, args.Canvas, args.Cursor.Step)
		args.Cursor.Step++
		budget--
	}
}

// LayerName returns the name of the layer the cursor sits in, or "done"
// past the end. Presentation only.
func (a Args) LayerName() string {
	if a.Cursor.Layer >= len(layers) {
		return "done"
	}
	return layers[a.Cursor.Layer].name
}

// Progress reports completed and total step counts for the stream.
// Zero totals before the first Render call.
func (a Args) Progress() (done, total int) {
	if a.Params == nil || a.Canvas == nil {
		return 0, 0
	}
	for i, ly := range layers {
		n := ly.steps(a.Params, a.Canvas)
		total += n
		if i < a.Cursor.Layer {
			done += n
		} else if i == a.Cursor.Layer {
			done += min(a.Cursor.Step, n)
		}
	}
	return done, total
}
