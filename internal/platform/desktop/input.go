package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/space-warior/internal/core"
)

// binding maps physical keys to an action. Held bindings are sampled every
// frame; the others fire once per press.
type binding struct {
	action core.Action
	keys   []ebiten.Key
	held   bool
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, true},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, true},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, true},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, true},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}, false},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, false},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}, false},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, false},
}

// readInput samples the keyboard into an input frame.
func readInput() core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if b.held && ebiten.IsKeyPressed(k) {
				frame.Hold(b.action)
			}
			if !b.held && inpututil.IsKeyJustPressed(k) {
				frame.Set(b.action)
			}
		}
	}
	return frame
}
