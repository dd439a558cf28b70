package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/space-warior/internal/assets"
)

func newTestPlayer(t *testing.T) *Player {
	t.Helper()
	lib, err := assets.Load("")
	if err != nil {
		t.Fatalf("assets.Load() error = %v", err)
	}
	p, err := NewPlayer(lib, nil)
	if err != nil {
		t.Fatalf("NewPlayer() error = %v", err)
	}
	return p
}

func drain(p *Player, n int) [][2]float64 {
	samples := make([][2]float64, n)
	p.Mixer().Stream(samples)
	return samples
}

func loud(samples [][2]float64) bool {
	for _, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			return true
		}
	}
	return false
}

func TestRenderLength(t *testing.T) {
	snd := assets.Sound{ID: "beep", Wave: assets.WaveSine, Notes: []float64{440, 0, 880}, NoteLength: 0.1, Volume: 1}
	buf, err := Render(snd, SampleRate, 1)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := 3 * SampleRate.N(100*time.Millisecond)
	if buf.Len() != want {
		t.Errorf("Len() = %d, expected %d", buf.Len(), want)
	}
}

func TestRenderRejectsBadSounds(t *testing.T) {
	tests := []assets.Sound{
		{ID: "short", Wave: assets.WaveSine, Notes: []float64{440}, NoteLength: 0},
		{ID: "saw", Wave: "saw", Notes: []float64{440}, NoteLength: 0.1},
	}
	for _, snd := range tests {
		if _, err := Render(snd, SampleRate, 0); err == nil {
			t.Errorf("Render(%s) should fail", snd.ID)
		}
	}
}

func TestPlayLoopedIsIdempotent(t *testing.T) {
	p := newTestPlayer(t)

	p.PlayLooped("theme", 0.5)
	p.PlayLooped("theme", 0.5)

	if !p.IsPlaying("theme") {
		t.Fatal("theme should be playing")
	}
	if got := p.mixer.Len(); got != 1 {
		t.Errorf("mixer has %d streamers, expected 1", got)
	}
	if !loud(drain(p, 4096)) {
		t.Error("looped theme should produce sound")
	}
}

func TestStopOnlyWhenPlaying(t *testing.T) {
	p := newTestPlayer(t)

	p.Stop("theme")
	if p.IsPlaying("theme") {
		t.Error("Stop on idle sound should not start it")
	}

	p.PlayLooped("theme", 0.5)
	p.Stop("theme")
	if p.IsPlaying("theme") {
		t.Error("theme should not be playing after Stop")
	}
	drain(p, 512)
	if got := p.mixer.Len(); got != 0 {
		t.Errorf("mixer has %d streamers after Stop, expected 0", got)
	}

	// Restart after stop works.
	p.PlayLooped("theme", 0.5)
	if !p.IsPlaying("theme") {
		t.Error("theme should restart after Stop")
	}
}

func TestSetVolume(t *testing.T) {
	p := newTestPlayer(t)

	p.SetVolume("theme", 1)
	if p.IsPlaying("theme") {
		t.Error("SetVolume should not start a sound")
	}

	p.PlayLooped("theme", 0.5)
	p.SetVolume("theme", 0)
	if loud(drain(p, 4096)) {
		t.Error("zero volume should be silent")
	}
}

func TestPlayOnce(t *testing.T) {
	p := newTestPlayer(t)

	p.PlayOnce("laser")
	if p.IsPlaying("laser") {
		t.Error("one-shot sounds should not be tracked as playing")
	}
	if !loud(drain(p, 1024)) {
		t.Error("laser should produce sound")
	}

	p.PlayOnce("missing")
	p.PlayLooped("missing", 1)
	if p.IsPlaying("missing") {
		t.Error("unknown sound should be ignored")
	}
}

func TestStopAll(t *testing.T) {
	p := newTestPlayer(t)
	p.PlayLooped("theme", 1)
	p.PlayOnce("explosion")
	p.StopAll()

	if p.IsPlaying("theme") || p.mixer.Len() != 0 {
		t.Error("StopAll should clear every sound")
	}
}
