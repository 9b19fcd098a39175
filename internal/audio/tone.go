package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/whackamole/internal/core"
)

// note is one pitch held for a duration. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// toneNotes maps a cue to its melody.
func toneNotes(t core.Tone) ([]note, error) {
	switch t {
	case core.ToneHit:
		return []note{{1318.51, 60 * time.Millisecond}}, nil
	case core.ToneEscape:
		return []note{{220, 150 * time.Millisecond}}, nil
	case core.ToneRoundUp:
		return []note{
			{659.25, 90 * time.Millisecond},
			{0, 20 * time.Millisecond},
			{987.77, 120 * time.Millisecond},
		}, nil
	case core.ToneGameOver:
		return []note{
			{440, 180 * time.Millisecond},
			{329.63, 180 * time.Millisecond},
			{220, 360 * time.Millisecond},
		}, nil
	default:
		return nil, fmt.Errorf("audio: unknown tone %d", int(t))
	}
}

// square is a bounded square wave generator, the sound a piezo buzzer makes.
type square struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSquare(freq float64, dur time.Duration, rate beep.SampleRate) *square {
	return &square{freq: freq, total: rate.N(dur), rate: rate}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		val := 0.0
		if s.freq > 0 {
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
			s.phase += s.freq / float64(s.rate)
			s.phase -= math.Floor(s.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		s.position++
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// toneStreamer builds the full cue at the given volume (0 to 1).
func toneStreamer(t core.Tone, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, err := toneNotes(t)
	if err != nil {
		return nil, err
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, newSquare(n.freq, n.dur, rate))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales linearly; effects.Volume works in log2 so 0 is handled as silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// toneLength returns how long a cue plays.
func toneLength(t core.Tone) time.Duration {
	notes, err := toneNotes(t)
	if err != nil {
		return 0
	}
	var total time.Duration
	for _, n := range notes {
		total += n.dur
	}
	return total
}
