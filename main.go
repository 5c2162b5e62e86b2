package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"github.com/lodenkai/etchling/art"
	"github.com/lodenkai/etchling/canvas"
	"github.com/lodenkai/etchling/tune"
)

// Config is the viewer's environment surface. The artwork itself is a
// pure function of the seed; everything here only shapes presentation.
type Config struct {
	Seed   string `env:"ETCHLING_SEED"`                   // start seed; empty derives one from the clock
	Width  int    `env:"ETCHLING_WIDTH" envDefault:"0"`   // canvas width in pixels; 0 sizes to the terminal
	Height int    `env:"ETCHLING_HEIGHT" envDefault:"0"`  // canvas height in pixels; 0 sizes to the terminal
	Budget int    `env:"ETCHLING_BUDGET" envDefault:"24"` // render steps per frame
	FPS    int    `env:"ETCHLING_FPS" envDefault:"60"`    // frame ticks per second
	Audio  bool   `env:"ETCHLING_AUDIO" envDefault:"true"`
}

// loadConfig reads ETCHLING_* variables and validates the start seed
func loadConfig() (Config, int32, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, 0, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Budget < 1 {
		cfg.Budget = 1
	}
	if cfg.FPS < 1 {
		cfg.FPS = 1
	} else if cfg.FPS > 240 {
		cfg.FPS = 240
	}

	seed := int32(time.Now().UnixNano())
	if cfg.Seed != "" {
		v, err := strconv.ParseInt(cfg.Seed, 10, 32)
		if err != nil {
			return cfg, 0, fmt.Errorf("ETCHLING_SEED: %w", err)
		}
		seed = int32(v)
	}
	return cfg, seed, nil
}

// Viewer owns the terminal, the canvas, and the in-flight render stream
type Viewer struct {
	screen tcell.Screen
	cfg    Config

	cv   *canvas.Canvas
	args art.Args
	done bool

	seed    int32
	history []int32
	paused  bool

	audioOK bool
	audioOn bool

	redrawAll bool
}

// NewViewer initializes the terminal and starts the first artwork
func NewViewer(cfg Config, seed int32) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen:  screen,
		cfg:     cfg,
		seed:    seed,
		audioOn: cfg.Audio,
	}

	// Audio is best effort; the viewer runs fine without a device
	if err := speaker.Init(tune.SampleRate, tune.SampleRate.N(time.Second/10)); err == nil {
		v.audioOK = true
	}

	v.restart()
	return v, nil
}

// canvasSize picks the artwork resolution: explicit config wins, else
// two pixels per cell row with the bottom row reserved for status
func (v *Viewer) canvasSize() (int, int) {
	if v.cfg.Width > 0 && v.cfg.Height > 0 {
		return v.cfg.Width, v.cfg.Height
	}
	w, h := v.screen.Size()
	if h < 2 {
		h = 2
	}
	if w < 1 {
		w = 1
	}
	return w, 2 * (h - 1)
}

// restart abandons any in-flight stream and begins the current seed
// from scratch
func (v *Viewer) restart() {
	w, h := v.canvasSize()
	if v.cv == nil {
		v.cv = canvas.New(w, h)
	} else {
		v.cv.Resize(w, h)
	}
	v.args = art.Args{Seed: v.seed, Canvas: v.cv}
	v.done = false
	v.paused = false
	v.redrawAll = true
	v.playMotif()
}

// jump moves to a new seed, remembering the old one
func (v *Viewer) jump(seed int32) {
	v.history = append(v.history, v.seed)
	v.seed = seed
	v.restart()
}

// back returns to the previously viewed seed, if any
func (v *Viewer) back() {
	if len(v.history) == 0 {
		return
	}
	v.seed = v.history[len(v.history)-1]
	v.history = v.history[:len(v.history)-1]
	v.restart()
}

func (v *Viewer) playMotif() {
	if !v.audioOK || !v.audioOn {
		return
	}
	speaker.Clear()
	speaker.Play(tune.Compose(v.seed))
}

func (v *Viewer) toggleAudio() {
	v.audioOn = !v.audioOn
	if v.audioOn {
		v.playMotif()
	} else if v.audioOK {
		speaker.Clear()
	}
}

// step advances the render stream by one frame's budget
func (v *Viewer) step() {
	if v.paused || v.done {
		return
	}
	v.args, v.done = art.Render(v.args, v.cfg.Budget)
}

// draw presents the canvas as half-block cells: the upper pixel of each
// cell pair rides the foreground of U+2580, the lower pixel the
// background. Only cells whose pixels changed since the last flush are
// rewritten unless a full redraw is pending.
func (v *Viewer) draw() {
	sw, sh := v.screen.Size()
	rows := sh - 1
	if rows < 1 {
		rows = sh
	}

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < sw; cx++ {
			if !v.redrawAll && !v.cv.Dirty(cx, 2*cy) && !v.cv.Dirty(cx, 2*cy+1) {
				continue
			}
			top := v.cv.At(cx, 2*cy)
			bot := v.cv.At(cx, 2*cy+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	v.cv.ResetDirty()
	v.redrawAll = false

	v.drawStatus(sw, sh)
	v.screen.Show()
}

// drawStatus paints the bottom status row
func (v *Viewer) drawStatus(sw, sh int) {
	if sh < 2 {
		return
	}

	state := "rendering " + v.args.LayerName()
	switch {
	case v.paused:
		state = "paused"
	case v.done:
		state = "done"
	}
	pct := 0
	if done, total := v.args.Progress(); total > 0 {
		pct = 100 * done / total
	}
	audio := "off"
	if !v.audioOK {
		audio = "n/a"
	} else if v.audioOn {
		audio = "on"
	}

	text := fmt.Sprintf(" seed %d  %s %d%%  audio %s  [n]ew [p]rev [r]edo [space]pause [a]udio [q]uit",
		v.seed, state, pct, audio)

	style := tcell.StyleDefault.
		Foreground(tcell.ColorWhite).
		Background(tcell.NewRGBColor(30, 30, 46))
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		v.screen.SetContent(x, sh-1, r, nil, style)
	}
}

// handleEvent processes one terminal event; returns false to quit
func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				v.jump(int32(time.Now().UnixNano()))
			case 'p':
				v.back()
			case 'r':
				v.restart()
			case ' ':
				v.paused = !v.paused
			case 'a':
				v.toggleAudio()
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
		if v.cfg.Width > 0 && v.cfg.Height > 0 {
			// Fixed-size artwork: keep the stream, just repaint
			v.redrawAll = true
		} else {
			// Auto-sized artwork is resolution-dependent; restart
			v.restart()
		}
	}
	return true
}

func (v *Viewer) run() {
	ticker := time.NewTicker(time.Second / time.Duration(v.cfg.FPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- v.screen.PollEvent()
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-events:
			if !v.handleEvent(ev) {
				return
			}
			v.draw()
		case <-ticker.C:
			v.step()
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	if v.audioOK {
		speaker.Clear()
		speaker.Close()
	}
	v.screen.Fini()
}

func main() {
	cfg, seed, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "etchling: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "etchling: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
