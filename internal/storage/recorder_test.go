package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/space-warior/internal/core"
)

func TestRecorderOncePerGameOver(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store, "squares", "normal")

	menu := core.GameState{InMenu: true}
	playing := core.GameState{Score: 5}
	paused := core.GameState{Score: 5, Paused: true}
	over := core.GameState{Score: 30, GameOver: true}

	steps := []struct {
		state core.GameState
		want  bool
	}{
		{menu, false},
		{playing, false},
		{playing, false},
		{paused, false},
		{paused, false},
		{playing, false},
		{over, true},
		{over, false},
		{menu, false},
		{playing, false},
		{over, true},
	}
	for i, s := range steps {
		got, err := r.Observe(s.state, 0.5)
		if err != nil {
			t.Fatalf("step %d: Observe() error: %v", i, err)
		}
		if got != s.want {
			t.Errorf("step %d: Observe() = %v, expected %v", i, got, s.want)
		}
	}

	scores, err := store.TopScores("squares", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 2 {
		t.Fatalf("recorded %d sessions, expected 2", len(scores))
	}
	// Equal scores keep insertion order. Paused steps do not count.
	if scores[0].Duration != 1500*time.Millisecond || scores[1].Duration != 500*time.Millisecond {
		t.Errorf("durations = %v, %v, expected 1.5s, 500ms", scores[0].Duration, scores[1].Duration)
	}
	if scores[0].Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected normal", scores[0].Difficulty)
	}
}

func TestRecorderSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	r := NewRecorder(store, "warior", "")

	r.Observe(core.GameState{}, 0.1)
	saved, err := r.Observe(core.GameState{GameOver: true}, 0.1)
	if err != nil || saved {
		t.Errorf("Observe() = %v, %v, expected no save for a zero score", saved, err)
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	r := NewRecorder(nil, "warior", "")
	r.Observe(core.GameState{Score: 1}, 0.25)
	r.Observe(core.GameState{Score: 1}, 0.25)
	saved, err := r.Observe(core.GameState{Score: 3, GameOver: true}, 0.25)
	if saved || err != nil {
		t.Errorf("Observe() = %v, %v, expected false, nil", saved, err)
	}
	if r.Played() != 500*time.Millisecond {
		t.Errorf("Played() = %v, expected 500ms", r.Played())
	}
}

func TestRecorderStoreError(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "closed.db"))
	if err != nil {
		t.Fatal(err)
	}
	store.Close()

	r := NewRecorder(store, "warior", "")
	r.Reset(core.GameState{Score: 2})
	if _, err := r.Observe(core.GameState{Score: 2, GameOver: true}, 0.1); err == nil {
		t.Error("Observe() should surface the store error")
	}
}
