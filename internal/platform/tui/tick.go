// Package tui provides the Bubble Tea front end for Space Warior.
// It handles the terminal frame loop, input mapping, the variant picker,
// the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the dt handed to the game after a stall such as a
// suspended terminal.
const maxFrameDelta = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick of a
// loop uses the nominal frame duration.
func frameDelta(prev, now time.Time, nominal float64) float64 {
	if prev.IsZero() {
		return nominal
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	return min(d, maxFrameDelta).Seconds()
}
