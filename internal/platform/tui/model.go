package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-warior/internal/core"
	"github.com/vovakirdan/space-warior/internal/registry"
	"github.com/vovakirdan/space-warior/internal/storage"
)

// Options configures a game model.
type Options struct {
	Store      *storage.Store
	Config     core.RuntimeConfig
	HoldWindow time.Duration
	Difficulty string
	DataDir    string // screenshots are written below it
	Logger     *log.Logger
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	opts     Options
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	pressed  core.InputFrame
	lastTick time.Time
	state    core.GameState
	recorder *storage.Recorder
	done     bool
	quitting bool
	logger   *log.Logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) *Model {
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Model{
		game:     game,
		screen:   core.NewScreen(opts.Config.ScreenW, playHeight(opts.Config.ScreenH)),
		opts:     opts,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     NewHeldKeys(opts.HoldWindow),
		pressed:  core.NewInputFrame(),
		recorder: storage.NewRecorder(opts.Store, game.ID(), opts.Difficulty),
		logger:   logger,
	}
}

// Init resets the game and starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Config)
	m.state = m.game.State()
	m.recorder.Reset(m.state)
	return tickCmd(m.opts.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records presses for the next tick. Movement keys feed the held
// tracker; everything else is edge-triggered.
func (m *Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		m.done = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if isMovement(action) {
		m.held.Press(action, now)
	}
	m.pressed.Set(action)
	return m, nil
}

// handleTick runs one simulation step with the elapsed real time.
func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.opts.Config.FrameSeconds())
	m.lastTick = now

	frame := m.pressed.Clone()
	m.held.Apply(&frame, now)
	m.pressed.Clear()

	m.state = m.game.Step(frame, dt).State
	saved, err := m.recorder.Observe(m.state, dt)
	switch {
	case err != nil:
		m.logger.Warn("could not record session", "game", m.game.ID(), "error", err)
	case saved:
		m.logger.Debug("session recorded", "game", m.game.ID(), "score", m.state.Score, "duration", m.recorder.Played())
	}

	if m.state.Quit {
		m.done = true
		return m, tea.Quit
	}
	if !isPlaying(m.state) {
		m.held.Release()
	}
	return m, tickCmd(m.opts.Config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := filepath.Join(m.opts.DataDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tui: create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("tui: write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the game and a help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Done reports whether the game asked to leave.
func (m *Model) Done() bool {
	return m.done
}

// State returns the last state reported by the game.
func (m *Model) State() core.GameState {
	return m.state
}

// Played returns the time spent playing in the current session.
func (m *Model) Played() time.Duration {
	return m.recorder.Played()
}

func isPlaying(s core.GameState) bool {
	return !s.InMenu && !s.Paused && !s.GameOver
}

// playHeight leaves the last terminal row to the help line.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
