package warior

import (
	"math"
	"strconv"

	"github.com/vovakirdan/space-warior/internal/assets"
	"github.com/vovakirdan/space-warior/internal/core"
	"github.com/vovakirdan/space-warior/internal/effects"
)

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// view maps field units to terminal cells below the HUD.
type view struct {
	sx, sy float64
	top    int
}

func newView(dst *core.Screen, s Snapshot) view {
	rows := max(dst.Height()-hudRows, 1)
	return view{
		sx:  float64(dst.Width()) / s.FieldW,
		sy:  float64(rows) / s.FieldH,
		top: hudRows,
	}
}

// cells returns the cell rectangle covered by r, at least one cell in size.
func (v view) cells(r core.Rect) (x, y, w, h int) {
	x = int(math.Floor(r.X * v.sx))
	y = v.top + int(math.Floor(r.Y*v.sy))
	w = max(int(math.Round(r.W*v.sx)), 1)
	h = max(int(math.Round(r.H*v.sy)), 1)
	return x, y, w, h
}

func (v view) point(fx, fy float64) (int, int) {
	return int(math.Floor(fx * v.sx)), v.top + int(math.Floor(fy*v.sy))
}

// RenderTerminal draws a snapshot into a cell buffer.
func RenderTerminal(dst *core.Screen, s Snapshot, lib *assets.Library) {
	if dst.Width() == 0 || dst.Height() == 0 || s.FieldW <= 0 || s.FieldH <= 0 {
		return
	}
	v := newView(dst, s)

	drawStars(dst, v, s)

	if s.Mode.ShowsScene() {
		for _, e := range s.Enemies {
			drawEntity(dst, v, lib, e, "", s.Clock)
		}
		for _, b := range s.Bullets {
			drawEntity(dst, v, lib, b, "", s.Clock)
		}
		drawEntity(dst, v, lib, s.Player, s.Pose.Animation(), s.Clock)
		drawBursts(dst, v, lib, s.Bursts)
		dst.DrawTextColored(0, 0, s.HUD(), core.ColorBrightWhite)
	}

	if lines := s.MenuLines(); lines != nil {
		drawPanel(dst, lines)
	}
}

// drawEntity stretches the sprite's current frame over the entity's cells.
func drawEntity(dst *core.Screen, v view, lib *assets.Library, e Entity, anim string, clock float64) {
	x, y, w, h := v.cells(e.Rect())
	sprite, ok := lib.Sprite(e.Sprite)
	if !ok {
		dst.FillRect(x, y, w, h, '#', core.ColorWhite)
		return
	}
	frame := sprite.Animation(anim).FrameAt(clock - e.Born)
	fw, fh := frame.Size()
	if fw == 0 || fh == 0 {
		return
	}
	for cy := 0; cy < h; cy++ {
		if y+cy < v.top {
			continue
		}
		for cx := 0; cx < w; cx++ {
			r := frame.At(cx*fw/w, cy*fh/h)
			if r != ' ' {
				dst.SetColored(x+cx, y+cy, r, sprite.Color)
			}
		}
	}
}

// drawBursts places explosion glyphs along each particle's path.
func drawBursts(dst *core.Screen, v view, lib *assets.Library, bursts []core.Burst) {
	sprite, ok := lib.Sprite("explosion")
	if !ok {
		return
	}
	anim := sprite.Animation("")
	for _, b := range bursts {
		frame := anim.FrameAt(b.Progress() * float64(len(anim.Frames)) / max(anim.FPS, 1))
		glyph := frame.At(0, 0)
		for _, p := range b.Particles {
			fx, fy := effects.ParticlePosition(b, p)
			x, y := v.point(fx, fy)
			if y >= v.top {
				dst.SetColored(x, y, glyph, sprite.Color)
			}
		}
	}
}

// drawStars scrolls a sparse star field downwards. The horizontal drift
// follows the background direction, so it stops when the game is over.
func drawStars(dst *core.Screen, v view, s Snapshot) {
	w, h := dst.Width(), dst.Height()-v.top
	if w <= 0 || h <= 0 {
		return
	}
	const stars = 40
	scroll := s.Uptime * 4
	drift := s.Background * float64(w)
	for i := 0; i < stars; i++ {
		// Fixed pseudo-random layout from a multiplicative hash.
		hx := (i*7919 + 13) % w
		hy := (i*104729 + 7) % h
		x := mod(hx+int(drift*float64(1+i%3)), w)
		y := mod(hy+int(scroll*float64(1+i%3)), h)
		glyph := '.'
		if i%5 == 0 {
			glyph = '*'
		}
		dst.SetColored(x, v.top+y, glyph, core.ColorGray)
	}
}

// drawPanel draws a centred box with one line of text per row.
func drawPanel(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+6, dst.Width())
	boxH := min(len(lines)+4, dst.Height())
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorCyan)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(y+2+i, l, c)
	}
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}
