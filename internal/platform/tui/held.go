package tui

import (
	"time"

	"github.com/vovakirdan/space-warior/internal/core"
)

// HeldKeys reconstructs held movement keys from a stream of key presses.
// Terminals report presses and auto-repeats but never releases, so a key
// counts as held until no repeat has arrived for the hold window. The first
// press of a key gets a longer grace period that covers the terminal's
// initial repeat delay.
type HeldKeys struct {
	window time.Duration
	first  time.Duration
	keys   map[core.Action]heldKey
}

type heldKey struct {
	last    time.Time
	repeats int
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = 120 * time.Millisecond
	}
	return &HeldKeys{
		window: window,
		first:  3 * window,
		keys:   make(map[core.Action]heldKey),
	}
}

// Press records a press or auto-repeat of a movement action. Pressing one
// direction releases the opposite one on the same axis.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if !isMovement(a) {
		return
	}
	delete(h.keys, opposite(a))
	k, ok := h.keys[a]
	if ok && now.Sub(k.last) <= h.grace(k) {
		k.repeats++
	} else {
		k.repeats = 0
	}
	k.last = now
	h.keys[a] = k
}

// Apply marks every still-held action on the frame and forgets expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, k := range h.keys {
		if now.Sub(k.last) > h.grace(k) {
			delete(h.keys, a)
			continue
		}
		frame.Hold(a)
	}
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.keys)
}

func (h *HeldKeys) grace(k heldKey) time.Duration {
	if k.repeats == 0 {
		return h.first
	}
	return h.window
}
