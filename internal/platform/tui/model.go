package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcade-tui/arkanoid/internal/audio"
	"github.com/arcade-tui/arkanoid/internal/config"
	"github.com/arcade-tui/arkanoid/internal/core"
	"github.com/arcade-tui/arkanoid/internal/game"
	"github.com/arcade-tui/arkanoid/internal/storage"
)

// Model is the Bubble Tea model driving one arkanoid session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	renderer   *Renderer
	keys       KeyMap
	store      *storage.Store
	player     *audio.Player
	cfg        config.Config
	runtime    core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a session model. store and player may be nil; scores are
// then not persisted and music stays off.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store,
	player *audio.Player, theme Theme, hardcore bool) Model {

	g := game.New(cfg, rt)
	g.SetHardcore(hardcore)

	return Model{
		game:       g,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		renderer:   NewRenderer(theme),
		keys:       DefaultKeyMap(),
		store:      store,
		player:     player,
		cfg:        cfg,
		runtime:    rt,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input into the frame consumed on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Map(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize rebuilds the game for the new terminal dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.scoreSaved = false

	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.MusicToggled && m.player != nil {
		m.player.Toggle()
	}

	// Save score on game over (once per round)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score,
				m.cfg.Layout.Columns, m.cfg.Layout.Rows, m.game.Hardcore())
		}
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store,
	player *audio.Player, theme Theme, hardcore bool) error {

	model := NewModel(cfg, rt, store, player, theme, hardcore)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
