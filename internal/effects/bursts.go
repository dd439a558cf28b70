// Package effects implements decorative particle bursts.
package effects

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/space-warior/internal/core"
)

// Bursts is a core.VisualEffects that spawns radial particle bursts.
// Particle offsets are expressed as a fraction of the burst size and grow
// with the burst's progress.
type Bursts struct {
	life      float64
	particles int
	rng       *rand.Rand
	active    []core.Burst
}

// NewBursts creates a burst emitter. life is in seconds.
func NewBursts(life float64, particles int, seed int64) *Bursts {
	if life <= 0 {
		life = 0.5
	}
	if particles <= 0 {
		particles = 8
	}
	return &Bursts{
		life:      life,
		particles: particles,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Seed restarts the particle layout sequence.
func (b *Bursts) Seed(seed int64) {
	b.rng = rand.New(rand.NewSource(seed))
}

// Burst starts a new burst centred on (x, y).
func (b *Bursts) Burst(x, y, size float64) {
	ps := make([]core.Particle, b.particles)
	step := 2 * math.Pi / float64(b.particles)
	for i := range ps {
		angle := float64(i)*step + b.rng.Float64()*step
		speed := 0.5 + b.rng.Float64()*0.5
		ps[i] = core.Particle{DX: math.Cos(angle) * speed, DY: math.Sin(angle) * speed}
	}
	b.active = append(b.active, core.Burst{
		X:         x,
		Y:         y,
		Size:      size,
		Life:      b.life,
		Particles: ps,
	})
}

// Update ages every burst and drops the finished ones.
func (b *Bursts) Update(dt float64) {
	live := b.active[:0]
	for _, burst := range b.active {
		burst.Age += dt
		if burst.Age < burst.Life {
			live = append(live, burst)
		}
	}
	clear(b.active[len(live):])
	b.active = live
}

// Active returns the live bursts. The slice is only valid until the next Update.
func (b *Bursts) Active() []core.Burst {
	return b.active
}

// Clear removes every burst.
func (b *Bursts) Clear() {
	b.active = b.active[:0]
}

// ParticlePosition returns the field position of particle p at the burst's
// current progress.
func ParticlePosition(burst core.Burst, p core.Particle) (x, y float64) {
	reach := burst.Size * burst.Progress()
	return burst.X + p.DX*reach, burst.Y + p.DY*reach
}

var _ core.VisualEffects = (*Bursts)(nil)
