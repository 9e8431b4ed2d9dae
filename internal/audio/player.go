// Package audio plays the celebration cue that accompanies a burst.
package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is the rate the speaker runs at; files at other rates are resampled.
const SampleRate beep.SampleRate = 44100

const meterRingSize = 2048

// ErrUnsupported is returned for files whose extension has no decoder.
var ErrUnsupported = errors.New("unsupported audio format")

// Player owns the speaker. A Player whose Init failed stays usable and
// silently drops every cue.
type Player struct {
	ready  bool
	volume float64
	meter  *Meter
}

// NewPlayer creates a player; volume is a gain in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{volume: math.Max(0, math.Min(1, volume))}
}

// Init opens the speaker. A failure is logged and leaves the player muted.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		log.Printf("[audio] speaker unavailable, cues muted: %v", err)
		return fmt.Errorf("failed to initialise speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool { return p.ready }

// Level is the loudness of the cue currently playing, 0 when silent.
func (p *Player) Level() float64 {
	if p.meter == nil {
		return 0
	}
	return p.meter.Level()
}

// Decode opens path and decodes it by extension.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var decode func(io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		decode = func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(rc) }
	case ".mp3":
		decode = mp3.Decode
	case ".flac":
		decode = func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(rc) }
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return streamer, format, nil
}

// PlayFile replaces whatever is playing with the file at path.
func (p *Player) PlayFile(path string) error {
	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}
	if !p.ready {
		_ = streamer.Close()
		return nil
	}

	var s beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}
	p.play(s, func() { _ = streamer.Close() })
	log.Printf("[audio] playing %s", filepath.Base(path))
	return nil
}

// Chime plays the built-in cue.
func (p *Player) Chime() {
	if !p.ready {
		return
	}
	p.play(Chime(SampleRate), nil)
}

func (p *Player) play(s beep.Streamer, done func()) {
	st := p.chain(s, done)
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Play(st)
}

// chain wraps s with gain and a fresh meter. The meter is emptied when s ends
// so Level drops back to 0.
func (p *Player) chain(s beep.Streamer, done func()) beep.Streamer {
	m := NewMeter(&gain{Streamer: s, Gain: p.volume}, meterRingSize)
	p.meter = m
	return beep.Seq(&beep.Ctrl{Streamer: m}, beep.Callback(func() {
		m.Reset()
		if done != nil {
			done()
		}
	}))
}

type gain struct {
	beep.Streamer
	Gain float64
}

func (g *gain) Stream(samples [][2]float64) (int, bool) {
	n, ok := g.Streamer.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= g.Gain
		samples[i][1] *= g.Gain
	}
	return n, ok
}

// Chime synthesises a rising two-note arpeggio at sr.
func Chime(sr beep.SampleRate) beep.Streamer {
	notes := []float64{784, 1047} // G5, C6
	noteLen := sr.N(120 * time.Millisecond)
	total := noteLen * len(notes)
	pos := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			note := notes[pos/noteLen]
			t := float64(pos%noteLen) / float64(noteLen)
			env := math.Exp(-4 * t)
			v := 0.4 * env * math.Sin(2*math.Pi*note*float64(pos)/float64(sr))
			samples[i] = [2]float64{v, v}
			pos++
			n++
		}
		return n, true
	})
}
