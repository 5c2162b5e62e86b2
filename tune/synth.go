package tune

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape for a motif
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// voice synthesizes one note: an oscillator with a linear attack ramp
// and release tail folded into the same streamer. DSP floats live here
// and nowhere deeper; the note's identity is already fixed by the time
// a voice exists.
type voice struct {
	freq    float64
	phase   float64
	wave    Wave
	total   int
	attack  int
	release int
	pos     int
	rate    beep.SampleRate
}

// newVoice creates a streamer for one note at the given frequency.
// Attack and release are fractions of the note length, so short notes
// stay percussive and long notes breathe.
func newVoice(freq float64, samples int, wave Wave, rate beep.SampleRate) beep.Streamer {
	attack := samples / 16
	release := samples * 2 / 5
	return &voice{
		freq:    freq,
		wave:    wave,
		total:   samples,
		attack:  attack,
		release: release,
		rate:    rate,
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, false
		}

		var val float64
		switch v.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * v.phase)
		case WaveSquare:
			if v.phase < 0.5 {
				val = 0.6
			} else {
				val = -0.6
			}
		case WaveTriangle:
			val = 4*math.Abs(v.phase-0.5) - 1
		}

		vol := 1.0
		if v.pos < v.attack && v.attack > 0 {
			vol = float64(v.pos) / float64(v.attack)
		}
		if tail := v.total - v.pos; tail < v.release && v.release > 0 {
			vol *= float64(tail) / float64(v.release)
		}

		val *= vol
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.freq / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// newVolume wraps a streamer in a volume effect.
// math.Log2(0) is -Inf, so zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
