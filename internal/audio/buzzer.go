// Package audio drives the cabinet buzzer through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/whackamole/internal/config"
	"github.com/vovakirdan/whackamole/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays buzzer cues through beep. Cues are mixed, so a hit tone
// landing on top of an escape tone plays both.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeaker creates a speaker; call Init before the first Beep.
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Beep queues a cue and returns immediately.
func (s *Speaker) Beep(t core.Tone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return fmt.Errorf("audio: speaker not initialized")
	}
	streamer, err := toneStreamer(t, sampleRate, s.volume)
	if err != nil {
		return err
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Close silences anything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Silent is a buzzer that logs cues instead of playing them.
type Silent struct {
	Logger *log.Logger
}

// Beep records the cue at debug level.
func (s Silent) Beep(t core.Tone) error {
	if s.Logger != nil {
		s.Logger.Debug("beep", "tone", t, "length", toneLength(t))
	}
	return nil
}

// Open returns the buzzer the settings ask for. A missing audio device is not
// fatal: the cabinet falls back to a silent buzzer.
func Open(cfg config.AudioSettings, logger *log.Logger) (core.Buzzer, func()) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if !cfg.Enabled {
		return Silent{Logger: logger}, func() {}
	}

	spk := NewSpeaker(cfg.Volume)
	if err := spk.Init(); err != nil {
		logger.Warn("audio unavailable, buzzer muted", "error", err)
		return Silent{Logger: logger}, func() {}
	}
	return spk, spk.Close
}
