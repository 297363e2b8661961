package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound is a cue played in response to a game event
type Sound uint8

const (
	SoundPaddle Sound = iota
	SoundWall
	SoundScore
	SoundPowerUp
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundPaddle:
		return "paddle"
	case SoundWall:
		return "wall"
	case SoundScore:
		return "score"
	case SoundPowerUp:
		return "powerup"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

type waveform uint8

const (
	waveSine waveform = iota
	waveSquare
	waveTriangle
)

// note is one tone segment of a cue
type note struct {
	wave waveform
	freq float64
	dur  time.Duration
	gain float64
}

var cues = map[Sound][]note{
	SoundPaddle:   {{waveSquare, 440, 40 * time.Millisecond, 0.25}},
	SoundWall:     {{waveTriangle, 220, 30 * time.Millisecond, 0.3}},
	SoundScore:    {{waveSine, 660, 80 * time.Millisecond, 0.35}, {waveSine, 330, 140 * time.Millisecond, 0.35}},
	SoundPowerUp:  {{waveSine, 523, 50 * time.Millisecond, 0.3}, {waveSine, 659, 50 * time.Millisecond, 0.3}, {waveSine, 784, 90 * time.Millisecond, 0.3}},
	SoundGameOver: {{waveSquare, 392, 150 * time.Millisecond, 0.2}, {waveSquare, 311, 150 * time.Millisecond, 0.2}, {waveSquare, 262, 300 * time.Millisecond, 0.2}},
}

// Length returns the total sample count of a cue
func Length(s Sound, sr beep.SampleRate) int {
	n := 0
	for _, nt := range cues[s] {
		n += sr.N(nt.dur)
	}
	return n
}

// Build assembles a finite streamer for a cue at the given volume
// Returns nil for unknown sounds or when a tone cannot be generated at sr
func Build(s Sound, sr beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := cues[s]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, nt := range notes {
		tone, err := newTone(nt.wave, sr, nt.freq)
		if err != nil {
			return nil
		}
		n := sr.N(nt.dur)
		parts = append(parts, &envelope{
			streamer: beep.Take(n, tone),
			total:    n,
			attack:   sr.N(3 * time.Millisecond),
			gain:     nt.gain,
		})
	}
	return newVolume(beep.Seq(parts...), volume)
}

func newTone(w waveform, sr beep.SampleRate, freq float64) (beep.Streamer, error) {
	switch w {
	case waveSquare:
		return generators.SquareTone(sr, freq)
	case waveTriangle:
		return generators.TriangleTone(sr, freq)
	}
	return generators.SineTone(sr, freq)
}

// envelope applies a linear attack and linear release over a fixed-length segment
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	gain     float64
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		amp := e.gain
		if e.attack > 0 && e.position < e.attack {
			amp *= float64(e.position) / float64(e.attack)
		}
		if rem := e.total - e.position; rem < e.total/2 {
			amp *= float64(rem) / float64(e.total/2)
		}
		samples[i][0] *= amp
		samples[i][1] *= amp
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear-volume control; Log2(0) is -Inf so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
