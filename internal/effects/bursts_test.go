package effects

import (
	"math"
	"slices"
	"testing"

	"github.com/vovakirdan/space-warior/internal/core"
)

func TestBurstLifecycle(t *testing.T) {
	b := NewBursts(0.5, 6, 1)
	b.Burst(100, 200, 40)

	active := b.Active()
	if len(active) != 1 {
		t.Fatalf("Active() has %d bursts, expected 1", len(active))
	}
	if len(active[0].Particles) != 6 {
		t.Errorf("burst has %d particles, expected 6", len(active[0].Particles))
	}

	b.Update(0.3)
	if len(b.Active()) != 1 {
		t.Error("burst should survive before its lifetime ends")
	}
	b.Update(0.3)
	if len(b.Active()) != 0 {
		t.Error("burst should be removed after its lifetime ends")
	}
}

func TestBurstParticlesStayWithinSize(t *testing.T) {
	b := NewBursts(1, 16, 42)
	b.Burst(0, 0, 50)
	b.Update(0.99)

	burst := b.Active()[0]
	for _, p := range burst.Particles {
		x, y := ParticlePosition(burst, p)
		if d := math.Hypot(x, y); d > 50 {
			t.Errorf("particle at distance %v, expected within 50", d)
		}
	}
}

func TestBurstSeed(t *testing.T) {
	layout := func(b *Bursts) []core.Particle {
		b.Burst(0, 0, 10)
		return b.Active()[len(b.Active())-1].Particles
	}

	reseeded := NewBursts(1, 8, 0)
	reseeded.Seed(7)
	if !slices.Equal(layout(reseeded), layout(NewBursts(1, 8, 7))) {
		t.Error("Seed(7) should match a burst emitter created with seed 7")
	}
	if slices.Equal(layout(NewBursts(1, 8, 7)), layout(NewBursts(1, 8, 8))) {
		t.Error("different seeds should give different particle layouts")
	}
}

func TestBurstClear(t *testing.T) {
	b := NewBursts(1, 4, 0)
	b.Burst(1, 1, 10)
	b.Burst(2, 2, 10)
	b.Clear()
	if len(b.Active()) != 0 {
		t.Errorf("Active() after Clear has %d bursts", len(b.Active()))
	}
}

func TestBurstDefaults(t *testing.T) {
	b := NewBursts(0, 0, 0)
	b.Burst(0, 0, 1)
	burst := b.Active()[0]
	if burst.Life != 0.5 || len(burst.Particles) != 8 {
		t.Errorf("defaults = life %v, %d particles, expected 0.5 and 8", burst.Life, len(burst.Particles))
	}
}

func TestParticlePositionStartsAtOrigin(t *testing.T) {
	burst := core.Burst{X: 10, Y: 20, Size: 30, Life: 1}
	x, y := ParticlePosition(burst, core.Particle{DX: 1, DY: -1})
	if x != 10 || y != 20 {
		t.Errorf("ParticlePosition() at age 0 = (%v, %v), expected origin", x, y)
	}
}
