package audio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/whackamole/internal/config"
	"github.com/vovakirdan/whackamole/internal/core"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneNotes(t *testing.T) {
	tones := []core.Tone{core.ToneHit, core.ToneEscape, core.ToneRoundUp, core.ToneGameOver}
	for _, tone := range tones {
		notes, err := toneNotes(tone)
		if err != nil {
			t.Errorf("toneNotes(%v) failed: %v", tone, err)
			continue
		}
		if len(notes) == 0 {
			t.Errorf("toneNotes(%v) is empty", tone)
		}
		if toneLength(tone) > time.Second {
			t.Errorf("toneLength(%v) = %v, cues must stay short", tone, toneLength(tone))
		}
	}

	if _, err := toneNotes(core.Tone(42)); err == nil {
		t.Error("Unknown tone should fail")
	}
	if toneLength(core.Tone(42)) != 0 {
		t.Error("Unknown tone should have no length")
	}
}

func TestSquareWave(t *testing.T) {
	rate := beep.SampleRate(8000)
	sq := newSquare(440, 100*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, ok := sq.Stream(buf)
	if !ok || n != 100 {
		t.Fatalf("Stream() = %d, %v, expected 100, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("Sample %d = %f, expected +/-1", i, v)
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("Sample %d differs between channels", i)
		}
	}

	total, _ := drain(sq)
	if total+100 != rate.N(100*time.Millisecond) {
		t.Errorf("Streamed %d samples, expected %d", total+100, rate.N(100*time.Millisecond))
	}
	if sq.Err() != nil {
		t.Errorf("Err() = %v", sq.Err())
	}
}

func TestRestIsSilent(t *testing.T) {
	_, peak := drain(newSquare(0, 20*time.Millisecond, beep.SampleRate(8000)))
	if peak != 0 {
		t.Errorf("Rest peak = %f, expected 0", peak)
	}
}

func TestToneStreamerLengthAndVolume(t *testing.T) {
	rate := beep.SampleRate(8000)

	s, err := toneStreamer(core.ToneGameOver, rate, 0.5)
	if err != nil {
		t.Fatalf("toneStreamer() failed: %v", err)
	}
	total, peak := drain(s)
	if expected := rate.N(toneLength(core.ToneGameOver)); total != expected {
		t.Errorf("Streamed %d samples, expected %d", total, expected)
	}
	if peak < 0.49 || peak > 0.51 {
		t.Errorf("Peak = %f, expected 0.5", peak)
	}

	muted, _ := toneStreamer(core.ToneHit, rate, 0)
	if _, peak := drain(muted); peak != 0 {
		t.Errorf("Muted peak = %f, expected 0", peak)
	}

	if _, err := toneStreamer(core.Tone(-1), rate, 1); err == nil {
		t.Error("Unknown tone should fail")
	}
}

func TestSpeakerRequiresInit(t *testing.T) {
	spk := NewSpeaker(0.3)
	if err := spk.Beep(core.ToneHit); err == nil {
		t.Error("Beep() before Init() should fail")
	}
	spk.Close() // no-op when closed
}

func TestOpenDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	buzzer, closeFn := Open(config.AudioSettings{Enabled: false}, logger)
	defer closeFn()

	if _, ok := buzzer.(Silent); !ok {
		t.Fatalf("Open(disabled) = %T, expected Silent", buzzer)
	}
	if err := buzzer.Beep(core.ToneRoundUp); err != nil {
		t.Errorf("Silent Beep() = %v", err)
	}
	if !strings.Contains(buf.String(), "RoundUp") {
		t.Errorf("Silent buzzer should log the cue, got %q", buf.String())
	}
}
