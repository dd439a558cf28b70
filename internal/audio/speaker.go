// Package audio plays the synthesised game sounds through gopxl/beep.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-warior/internal/assets"
	"github.com/vovakirdan/space-warior/internal/core"
)

type voice struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// Player mixes sounds into a beep.Mixer. It tracks which looped sounds are
// playing so that starting one twice is a no-op and stopping or changing the
// volume of a sound that is not playing does nothing.
type Player struct {
	mu      sync.Mutex
	lock    func()
	unlock  func()
	mixer   *beep.Mixer
	buffers map[string]*beep.Buffer
	playing map[string]*voice
	logger  *log.Logger
}

// NewPlayer pre-renders every sound in lib. The returned player is not
// connected to an output device; Speaker does that.
func NewPlayer(lib *assets.Library, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		lock:    func() {},
		unlock:  func() {},
		mixer:   &beep.Mixer{},
		buffers: make(map[string]*beep.Buffer),
		playing: make(map[string]*voice),
		logger:  logger,
	}
	for i, id := range lib.SoundIDs() {
		snd, _ := lib.Sound(id)
		buf, err := Render(snd, SampleRate, int64(i))
		if err != nil {
			return nil, err
		}
		p.buffers[id] = buf
	}
	return p, nil
}

// Mixer returns the streamer all sounds are mixed into.
func (p *Player) Mixer() beep.Streamer {
	return p.mixer
}

// PlayLooped starts a looping sound unless it is already playing.
func (p *Player) PlayLooped(id string, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.playing[id]; ok {
		return
	}
	buf, ok := p.buffers[id]
	if !ok {
		p.logger.Debug("unknown sound", "id", id)
		return
	}

	v := &voice{}
	v.volume = newVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), volume)
	v.ctrl = &beep.Ctrl{Streamer: v.volume}

	p.lock()
	p.mixer.Add(v.ctrl)
	p.unlock()
	p.playing[id] = v
}

// PlayOnce plays a sound from the start without tracking it.
func (p *Player) PlayOnce(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.buffers[id]
	if !ok {
		p.logger.Debug("unknown sound", "id", id)
		return
	}
	p.lock()
	p.mixer.Add(buf.Streamer(0, buf.Len()))
	p.unlock()
}

// Stop stops a looping sound if it is playing.
func (p *Player) Stop(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.playing[id]
	if !ok {
		return
	}
	p.lock()
	v.ctrl.Paused = true
	// A nil streamer makes the mixer drop the voice.
	v.ctrl.Streamer = nil
	p.unlock()
	delete(p.playing, id)
}

// SetVolume changes the volume of a looping sound if it is playing.
func (p *Player) SetVolume(id string, volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	v, ok := p.playing[id]
	if !ok {
		return
	}
	p.lock()
	setGain(v.volume, volume)
	p.unlock()
}

// IsPlaying reports whether a looped sound is active.
func (p *Player) IsPlaying(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.playing[id]
	return ok
}

// StopAll silences every sound.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.mixer.Clear()
	p.unlock()
	clear(p.playing)
}

// Speaker is a Player wired to the system audio device.
type Speaker struct {
	*Player
}

// NewSpeaker initialises the audio device and starts mixing. The speaker can
// only be initialised once per process.
func NewSpeaker(lib *assets.Library, logger *log.Logger) (*Speaker, error) {
	p, err := NewPlayer(lib, logger)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	p.lock = speaker.Lock
	p.unlock = speaker.Unlock
	speaker.Play(p.mixer)
	return &Speaker{Player: p}, nil
}

// Close stops all sounds.
func (s *Speaker) Close() {
	s.StopAll()
}

// Open returns a speaker-backed port, or core.NopAudio when muted or when the
// device cannot be opened.
func Open(lib *assets.Library, mute bool, logger *log.Logger) (core.AudioPort, func()) {
	if mute {
		return core.NopAudio{}, func() {}
	}
	s, err := NewSpeaker(lib, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return core.NopAudio{}, func() {}
	}
	return s, s.Close
}

var (
	_ core.AudioPort = (*Player)(nil)
	_ core.AudioPort = (*Speaker)(nil)
)
