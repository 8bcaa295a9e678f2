package audio

import (
	"math"
	"testing"
	"time"
)

// TestPlayerGracefulDegradation verifies play calls don't panic when the
// speaker was never initialized.
func TestPlayerGracefulDegradation(t *testing.T) {
	p := NewPlayer()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("play without initialization panicked: %v", r)
		}
	}()

	p.PlayEat()
	p.PlayGold()
	p.PlayPoison()
	p.PlayPowerUp()
	p.PlayGameOver()
	p.Cleanup()
}

// TestPlayerInitialization verifies init and cleanup round-trip. Speaker
// initialization may fail in environments without an audio device; that is
// not a failure, audio is optional.
func TestPlayerInitialization(t *testing.T) {
	p := NewPlayer()

	if err := p.Init(); err != nil {
		t.Logf("speaker init failed (expected without audio device): %v", err)
		return
	}

	// Second init is a no-op
	if err := p.Init(); err != nil {
		t.Errorf("second Init() returned %v, want nil", err)
	}

	p.PlayEat()
	p.Cleanup()
}

func TestBlipGeneratorBounds(t *testing.T) {
	g := &blipGenerator{sr: sampleRate, freq: 660}
	buf := make([][2]float64, sampleRate.N(time.Millisecond*100))

	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream() = (%d, %v), want full buffer", n, ok)
	}

	for i, s := range buf {
		if math.Abs(s[0]) > 1.0 || math.Abs(s[1]) > 1.0 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono-balanced: %v", i, s)
		}
	}
}

func TestSweepGeneratorBounds(t *testing.T) {
	length := sampleRate.N(time.Millisecond * 300)
	g := &sweepGenerator{sr: sampleRate, from: 440, to: 110, length: length}
	buf := make([][2]float64, length)

	n, ok := g.Stream(buf)
	if !ok || n != length {
		t.Fatalf("Stream() = (%d, %v), want full buffer", n, ok)
	}

	for i, s := range buf {
		if math.Abs(s[0]) > 1.0 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
}

func TestBlipEnvelopeDecays(t *testing.T) {
	g := &blipGenerator{sr: sampleRate, freq: 660}
	buf := make([][2]float64, sampleRate.N(time.Millisecond*500))
	g.Stream(buf)

	// Peak at the start must exceed the peak of the final 100ms.
	peak := func(part [][2]float64) float64 {
		m := 0.0
		for _, s := range part {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}

	head := peak(buf[:sampleRate.N(time.Millisecond*50)])
	tail := peak(buf[len(buf)-sampleRate.N(time.Millisecond*100):])
	if tail >= head {
		t.Errorf("envelope did not decay: head peak %v, tail peak %v", head, tail)
	}
}
