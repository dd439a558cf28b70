package warior

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-warior/internal/core"
)

// ScoreKeeper tracks the session score and the process-wide high score.
type ScoreKeeper struct {
	score  uint64
	high   uint64
	store  core.HighScoreStore
	logger *log.Logger
}

// NewScoreKeeper loads the persisted high score once.
func NewScoreKeeper(store core.HighScoreStore, logger *log.Logger) *ScoreKeeper {
	return &ScoreKeeper{high: store.Load(), store: store, logger: logger}
}

// Reset starts a new session at zero.
func (k *ScoreKeeper) Reset() {
	k.score = 0
}

// Add credits points and raises the in-memory high score when beaten.
func (k *ScoreKeeper) Add(points uint64) {
	k.score += points
	k.high = max(k.high, k.score)
}

// Score returns the current session score.
func (k *ScoreKeeper) Score() uint64 { return k.score }

// High returns the best score known to this process.
func (k *ScoreKeeper) High() uint64 { return k.high }

// IsRecord reports whether the session holds the (non-zero) high score.
func (k *ScoreKeeper) IsRecord() bool {
	return k.score > 0 && k.score == k.high
}

// Persist writes the score when the session holds the high score.
// Sessions may share a store, so a better stored score wins and becomes
// the known high score. Save failures are logged, never surfaced to the
// player.
func (k *ScoreKeeper) Persist() bool {
	if !k.IsRecord() {
		return false
	}
	if stored := k.store.Load(); stored >= k.score {
		k.high = stored
		return false
	}
	if err := k.store.Save(k.score); err != nil {
		k.logger.Warn("failed to save high score", "score", k.score, "error", err)
		return false
	}
	return true
}

// memoryStore keeps the high score for the process lifetime only.
type memoryStore struct {
	score uint64
}

func (m *memoryStore) Load() uint64 { return m.score }

func (m *memoryStore) Save(score uint64) error {
	m.score = score
	return nil
}
