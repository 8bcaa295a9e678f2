package game

import (
	"math"

	"github.com/vovakirdan/snakeplus/internal/config"
	"github.com/vovakirdan/snakeplus/internal/core"
)

// Clock converts variable real-time deltas into discrete grid steps at a
// continuously adjusted cells/second rate. Leftover time is carried in an
// accumulator so movement is never skipped or double-applied regardless of
// frame-rate jitter.
type Clock struct {
	cfg   config.SpeedConfig
	base  float64
	speed float64
	acc   float64
}

// NewClock creates a clock running at the given base speed.
func NewClock(base float64, cfg config.SpeedConfig) *Clock {
	return &Clock{cfg: cfg, base: base, speed: base}
}

// Advance consumes a real-time delta and returns how many whole grid steps
// it covers. The target speed is the base plus the per-normal-food ramp,
// clamped to [base, max], then scaled by the slow factor while SLOW is
// active. The actual speed approaches the target exponentially rather than
// jumping, so speed changes are perceptually continuous.
func (c *Clock) Advance(dt float64, normalEaten int, slowActive bool) int {
	target := core.ClampF(c.base+float64(normalEaten)*c.cfg.RampPerNormal, c.base, c.cfg.Max)
	if slowActive {
		target *= c.cfg.SlowFactor
	}
	c.speed += (target - c.speed) * math.Min(1, dt*c.cfg.Smoothing)

	interval := 1.0 / c.speed
	c.acc += dt
	steps := 0
	for c.acc >= interval {
		c.acc -= interval
		steps++
	}
	return steps
}

// Speed returns the current rate in cells/second.
func (c *Clock) Speed() float64 {
	return c.speed
}

// Base returns the ruleset's starting speed in cells/second.
func (c *Clock) Base() float64 {
	return c.base
}

// Max returns the speed cap in cells/second.
func (c *Clock) Max() float64 {
	return c.cfg.Max
}
