// Package audio provides short synthesized blips for game events using the
// beep speaker. Audio is strictly optional: a Player whose Init failed or
// was never called swallows every play request.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and mixes one-shot blips into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before playing; without it every
// play method is a no-op.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. Safe to call twice.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the mixer. The speaker itself has no close; dropping all
// streamers is enough to stop output.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// PlayEat is the short blip for normal food.
func (p *Player) PlayEat() {
	p.playBlip(660, time.Millisecond*60)
}

// PlayGold is the brighter blip for gold food.
func (p *Player) PlayGold() {
	p.playBlip(880, time.Millisecond*90)
}

// PlayPoison is the low buzz for poison food.
func (p *Player) PlayPoison() {
	p.playBlip(160, time.Millisecond*140)
}

// PlayPowerUp is a rising sweep for power-up pickup.
func (p *Player) PlayPowerUp() {
	p.playSweep(420, 840, time.Millisecond*110)
}

// PlayGameOver is a falling sweep for the end of a round.
func (p *Player) PlayGameOver() {
	p.playSweep(440, 110, time.Millisecond*320)
}

func (p *Player) playBlip(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(d), &blipGenerator{sr: sampleRate, freq: freq})
	p.mixer.Add(streamer)
}

func (p *Player) playSweep(from, to float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(d), &sweepGenerator{
		sr:     sampleRate,
		from:   from,
		to:     to,
		length: sampleRate.N(d),
	})
	p.mixer.Add(streamer)
}

// blipGenerator produces a fixed-frequency sine with a fast attack and
// exponential decay.
type blipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack, then decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*18)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// sweepGenerator slides linearly between two frequencies over its length.
// Phase accumulates per sample so the sweep stays click-free.
type sweepGenerator struct {
	sr     beep.SampleRate
	from   float64
	to     float64
	length int
	pos    int
	phase  float64
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		frac := math.Min(float64(g.pos)/float64(g.length), 1.0)
		freq := g.from + (g.to-g.from)*frac
		g.phase += freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		envelope := attack * (1.0 - 0.7*frac)
		sample := 0.22 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
