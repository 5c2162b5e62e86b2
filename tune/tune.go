// Package tune sonifies artwork seeds: each seed derives a short
// melodic motif through the same deterministic draw discipline the
// renderer uses, so an artwork's sound is as reproducible as its
// pixels. Note selection is integer and fix64 math end to end; floats
// first appear inside the beep synthesis voices.
package tune

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lodenkai/etchling/fix64"
	"github.com/lodenkai/etchling/fixrand"
	"github.com/lodenkai/etchling/fxmath"
)

// SampleRate for all synthesis
const SampleRate = beep.SampleRate(44100)

// pentatonic semitone offsets above the root; rests are drawn as a
// sixth outcome alongside these five degrees
var pentatonic = [5]int{0, 2, 4, 7, 9}

// Note is one motif event. Midi 0 marks a rest.
type Note struct {
	Midi    int
	Eighths int
}

// motif is a fully derived composition
type motif struct {
	wave     Wave
	eighthMs int
	notes    []Note
}

// derive draws a motif from the source. Like the renderer's Params,
// the draw order is a fixed contract per seed.
func derive(src *fixrand.Source) motif {
	m := motif{
		wave:     Wave(src.NextN(3)),
		eighthMs: int(src.NextRange(90, 150)),
	}
	root := int(src.NextRange(57, 70))

	count := int(src.NextRange(8, 17))
	m.notes = make([]Note, 0, count)
	for i := 0; i < count; i++ {
		roll := int(src.NextN(6))
		if roll == 5 {
			m.notes = append(m.notes, Note{Midi: 0, Eighths: int(src.NextRange(1, 3))})
			continue
		}
		octave := int(src.NextN(3)) - 1
		m.notes = append(m.notes, Note{
			Midi:    root + pentatonic[roll] + 12*octave,
			Eighths: int(src.NextRange(1, 4)),
		})
	}
	return m
}

// Notes returns the note sequence a seed composes, for inspection and
// testing without synthesis.
func Notes(seed int32) []Note {
	return derive(fixrand.New(seed)).notes
}

// Frequency converts a MIDI note number to Hertz through fix64
// exponentiation: 440 * exp(ln2 * (midi-69)/12). The float conversion
// happens once, at the returned boundary value.
func Frequency(midi int) float64 {
	semis := fix64.Div(fix64.FromInt(int64(midi-69)), fix64.FromInt(12))
	ratio := fxmath.Exp(fix64.Mul(fix64.Ln2, semis))
	return fix64.ToFloat(fix64.Mul(fix64.FromInt(440), ratio))
}

// Compose derives the motif for a seed and builds its playback
// streamer: one voice per note, rests as silence, sequenced in order.
func Compose(seed int32) beep.Streamer {
	m := derive(fixrand.New(seed))

	eighth := time.Duration(m.eighthMs) * time.Millisecond
	streamers := make([]beep.Streamer, 0, len(m.notes))
	for _, n := range m.notes {
		samples := SampleRate.N(eighth * time.Duration(n.Eighths))
		if n.Midi == 0 {
			streamers = append(streamers, beep.Silence(samples))
			continue
		}
		streamers = append(streamers, newVoice(Frequency(n.Midi), samples, m.wave, SampleRate))
	}
	return newVolume(beep.Seq(streamers...), 0.7)
}
