package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/snakeplus/internal/config"
)

var testEffectCfg = config.EffectConfig{
	SlowSecs:  8.0,
	GhostSecs: 8.0,
	MultiSecs: 10.0,
}

func TestEffectActivateAndExpire(t *testing.T) {
	e := NewEffects(testEffectCfg)

	e.Activate(PowerSlow, 0)
	if !e.Active(PowerSlow) {
		t.Fatal("SLOW should be active after activation")
	}

	e.Expire(7.9)
	if !e.Active(PowerSlow) {
		t.Error("SLOW expired early")
	}

	e.Expire(8.0)
	if e.Active(PowerSlow) {
		t.Error("SLOW should expire exactly at its deadline")
	}
}

func TestEffectRefreshExtends(t *testing.T) {
	e := NewEffects(testEffectCfg)

	e.Activate(PowerSlow, 0)
	e.Activate(PowerSlow, 5) // refresh pushes expiry to 13

	e.Expire(12.9)
	if !e.Active(PowerSlow) {
		t.Error("refreshed SLOW expired at the original deadline")
	}

	e.Expire(13.0)
	if e.Active(PowerSlow) {
		t.Error("refreshed SLOW should expire at the extended deadline")
	}
}

func TestEffectKindsIndependent(t *testing.T) {
	e := NewEffects(testEffectCfg)

	e.Activate(PowerSlow, 0)  // expires at 8
	e.Activate(PowerMulti, 0) // expires at 10

	e.Expire(9.0)
	if e.Active(PowerSlow) {
		t.Error("SLOW should have expired")
	}
	if !e.Active(PowerMulti) {
		t.Error("MULTI should still be active")
	}
}

func TestScoreMultiplierDerived(t *testing.T) {
	e := NewEffects(testEffectCfg)

	if m := e.ScoreMultiplier(); m != 1.0 {
		t.Errorf("multiplier = %v with no effects, want 1", m)
	}

	e.Activate(PowerMulti, 0)
	if m := e.ScoreMultiplier(); m != 2.0 {
		t.Errorf("multiplier = %v with MULTI active, want 2", m)
	}

	e.Expire(10.0)
	if m := e.ScoreMultiplier(); m != 1.0 {
		t.Errorf("multiplier = %v after MULTI expired, want 1", m)
	}
}

func TestEffectRemaining(t *testing.T) {
	e := NewEffects(testEffectCfg)

	if r := e.Remaining(PowerGhost, 0); r != 0 {
		t.Errorf("Remaining = %v for inactive effect, want 0", r)
	}

	e.Activate(PowerGhost, 2)
	if r := e.Remaining(PowerGhost, 6); math.Abs(r-4.0) > 1e-9 {
		t.Errorf("Remaining = %v, want 4", r)
	}
}
