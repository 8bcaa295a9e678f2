package game

import (
	"github.com/vovakirdan/snakeplus/internal/config"
)

// Effects tracks the timed power-up effects of a round as a fixed-size
// mapping from power-up kind to an optional absolute expiry timestamp in
// simulation seconds. An entry is present only while the effect is active;
// iteration over the closed kind set is exhaustive by construction.
type Effects struct {
	cfg    config.EffectConfig
	active [numPowerUpKinds]bool
	expiry [numPowerUpKinds]float64
}

// NewEffects creates an empty effect set with the given durations.
func NewEffects(cfg config.EffectConfig) *Effects {
	return &Effects{cfg: cfg}
}

// Duration returns the configured effect duration for a power-up kind.
func (e *Effects) Duration(kind PowerUpKind) float64 {
	switch kind {
	case PowerSlow:
		return e.cfg.SlowSecs
	case PowerGhost:
		return e.cfg.GhostSecs
	default:
		return e.cfg.MultiSecs
	}
}

// Activate starts or refreshes an effect so it lasts until now plus the
// kind's duration. Refreshing extends the expiry, never shortens it.
func (e *Effects) Activate(kind PowerUpKind, now float64) {
	until := now + e.Duration(kind)
	if e.active[kind] && e.expiry[kind] > until {
		return
	}
	e.active[kind] = true
	e.expiry[kind] = until
}

// Expire removes every effect whose expiry is at or before now. Called once
// per simulation update, before movement, so effect state is consistent
// within a frame.
func (e *Effects) Expire(now float64) {
	for kind := range e.active {
		if e.active[kind] && now >= e.expiry[kind] {
			e.active[kind] = false
		}
	}
}

// Active reports whether an effect is currently running.
func (e *Effects) Active(kind PowerUpKind) bool {
	return e.active[kind]
}

// ScoreMultiplier is 2 while the MULTI effect is active, otherwise 1. The
// multiplier is derived rather than stored, so it reverts the moment MULTI
// expires.
func (e *Effects) ScoreMultiplier() float64 {
	if e.active[PowerMulti] {
		return 2.0
	}
	return 1.0
}

// Remaining returns the seconds left on an effect, or 0 if it is inactive.
func (e *Effects) Remaining(kind PowerUpKind, now float64) float64 {
	if !e.active[kind] {
		return 0
	}
	left := e.expiry[kind] - now
	if left < 0 {
		return 0
	}
	return left
}
