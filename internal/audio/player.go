// Package audio plays the background melody through the default audio
// device using the beep toolkit. The melody is synthesized, so no sound
// assets ship with the binary.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// melodyNote is one step of the looped tune.
type melodyNote struct {
	freq  float64 // Hz; 0 is a rest
	beats int     // Duration in eighth notes
}

// melody is a short chiptune loop in A minor.
var melody = []melodyNote{
	{440.00, 2}, // A4
	{523.25, 2}, // C5
	{659.25, 2}, // E5
	{523.25, 2}, // C5
	{587.33, 2}, // D5
	{659.25, 2}, // E5
	{493.88, 2}, // B4
	{440.00, 2}, // A4
	{392.00, 2}, // G4
	{440.00, 2}, // A4
	{493.88, 2}, // B4
	{523.25, 4}, // C5
	{0, 2},      // rest
}

// MelodyGenerator streams the melody as a square wave, looping forever.
// It implements beep.Streamer and never reports end of stream.
type MelodyGenerator struct {
	sr      beep.SampleRate
	notes   []melodyNote
	note    int // Index of the current note
	notePos int // Sample position inside the current note
}

// NewMelodyGenerator creates a generator at the given sample rate.
func NewMelodyGenerator(sr beep.SampleRate) *MelodyGenerator {
	return &MelodyGenerator{sr: sr, notes: melody}
}

// beatSamples is the length of one eighth note at 150 BPM.
func (g *MelodyGenerator) beatSamples() int {
	return g.sr.N(time.Minute / 150 / 2)
}

func (g *MelodyGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	beat := g.beatSamples()

	for i := range samples {
		note := g.notes[g.note]
		noteLen := beat * note.beats

		var sample float64
		if note.freq > 0 {
			t := float64(g.notePos) / float64(g.sr)
			// Square wave, softened by a short attack and release
			// envelope so note boundaries do not click.
			if math.Sin(2*math.Pi*note.freq*t) >= 0 {
				sample = 0.12
			} else {
				sample = -0.12
			}
			sample *= envelope(g.notePos, noteLen, g.sr.N(10*time.Millisecond))
		}

		samples[i][0] = sample
		samples[i][1] = sample

		g.notePos++
		if g.notePos >= noteLen {
			g.notePos = 0
			g.note = (g.note + 1) % len(g.notes)
		}
	}
	return len(samples), true
}

func (g *MelodyGenerator) Err() error {
	return nil
}

// envelope ramps the amplitude over the first and last fade samples of a note.
func envelope(pos, length, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if pos < fade {
		return float64(pos) / float64(fade)
	}
	if remaining := length - pos; remaining < fade {
		return float64(remaining) / float64(fade)
	}
	return 1
}

// Player owns the speaker and the melody stream. Music starts muted; Toggle
// flips it. All methods are safe to call even if the audio device could not
// be opened, so the game works on machines without sound.
type Player struct {
	mu          sync.Mutex
	ctrl        *beep.Ctrl
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device and starts the melody stream in a paused
// state. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	p.ctrl = &beep.Ctrl{Streamer: NewMelodyGenerator(sampleRate), Paused: true}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Toggle switches the music on or off.
func (p *Player) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

// Playing reports whether the melody is audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.initialized && !p.ctrl.Paused
}

// Close silences the player. The speaker itself stays open; beep provides
// no way to close it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}
