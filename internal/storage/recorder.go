package storage

import (
	"time"

	"github.com/vovakirdan/space-warior/internal/core"
)

// Recorder watches the per-frame game state and records each finished
// session exactly once, when the game first reports GameOver. Sessions
// that end with a zero score are not recorded.
type Recorder struct {
	store      *Store
	gameID     string
	difficulty string
	prev       core.GameState
	played     time.Duration
	saved      bool
}

// NewRecorder creates a recorder for one game. A nil store disables saving
// but play time is still tracked.
func NewRecorder(store *Store, gameID, difficulty string) *Recorder {
	return &Recorder{
		store:      store,
		gameID:     gameID,
		difficulty: difficulty,
		prev:       core.GameState{InMenu: true},
	}
}

// Reset sets the state the next Observe call compares against.
func (r *Recorder) Reset(state core.GameState) {
	r.prev = state
	r.played = 0
	r.saved = state.GameOver
}

// Observe takes the state after a step of dt seconds. It reports whether
// a session was written.
func (r *Recorder) Observe(next core.GameState, dt float64) (bool, error) {
	switch {
	case playing(r.prev):
		r.played += time.Duration(dt * float64(time.Second))
	case playing(next) && !r.prev.Paused:
		r.played = 0
	}
	if !next.GameOver {
		r.saved = false
	}
	r.prev = next

	if !next.GameOver || r.saved {
		return false, nil
	}
	r.saved = true
	if r.store == nil || next.Score <= 0 {
		return false, nil
	}
	_, err := r.store.RecordSession(Session{
		GameID:     r.gameID,
		Score:      uint64(next.Score),
		Duration:   r.played,
		Difficulty: r.difficulty,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Played returns the time spent playing in the current session.
func (r *Recorder) Played() time.Duration {
	return r.played
}

func playing(s core.GameState) bool {
	return !s.InMenu && !s.Paused && !s.GameOver
}
