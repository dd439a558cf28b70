package core

// AudioPort plays sounds identified by asset ids. Implementations are
// expected to ignore ids they cannot resolve.
type AudioPort interface {
	PlayLooped(id string, volume float64)
	PlayOnce(id string)
	Stop(id string)
	SetVolume(id string, volume float64)
}

// Particle is a single point of a visual burst, relative to the burst origin.
type Particle struct {
	DX, DY float64
}

// Burst is a short-lived visual effect anchored at a field position.
type Burst struct {
	X, Y      float64
	Size      float64
	Age       float64 // seconds since creation
	Life      float64 // total lifetime in seconds
	Particles []Particle
}

// Progress returns how far the burst is through its lifetime, in [0, 1].
func (b Burst) Progress() float64 {
	if b.Life <= 0 {
		return 1
	}
	return ClampF(b.Age/b.Life, 0, 1)
}

// VisualEffects owns decorative effects that have no gameplay meaning.
type VisualEffects interface {
	Burst(x, y, size float64)
	Update(dt float64)
	Active() []Burst
	Clear()
}

// HighScoreStore persists the best score across process runs.
// Load never fails: absent or unreadable state reads as zero.
type HighScoreStore interface {
	Load() uint64
	Save(score uint64) error
}

// NopAudio is an AudioPort that does nothing.
type NopAudio struct{}

func (NopAudio) PlayLooped(string, float64) {}
func (NopAudio) PlayOnce(string)            {}
func (NopAudio) Stop(string)                {}
func (NopAudio) SetVolume(string, float64)  {}

var _ AudioPort = NopAudio{}
