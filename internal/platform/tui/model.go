package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/miniarcade/arcade-hub/internal/core"
	"github.com/miniarcade/arcade-hub/internal/registry"
	"github.com/miniarcade/arcade-hub/internal/storage"
)

// toastTicks is how long a notice stays on screen.
const toastTicks = 90

// toast is a short-lived message surfaced by a game, such as a new
// session best.
type toast struct {
	text string
	left int
}

// GameModel is the Bubble Tea model for running arcade games.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	toasts     []toast
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		// From the game's own start screen, back leaves for the hub menu.
		if m.gameState.Phase == core.PhaseMenu {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.inputFrame.Set(action)

	case core.ActionNone:
		// Unmapped key, ignore.

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games derive their board from the screen size, so a resize restarts
	// the round unless it is already over.
	if !m.gameState.GameOver() {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick advances the simulation one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver()

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, n := range result.Notices {
		m.toasts = append(m.toasts, toast{text: n, left: toastTicks})
	}
	m.expireToasts()

	// Save score once per finished round.
	if m.gameState.GameOver() && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.gameState.Score)
		}
		m.scoreSaved = true
	}
	if wasOver && !m.gameState.GameOver() {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// expireToasts ages notices and drops the ones past their lifetime.
func (m *GameModel) expireToasts() {
	alive := m.toasts[:0]
	for _, t := range m.toasts {
		t.left--
		if t.left > 0 {
			alive = append(alive, t)
		}
	}
	m.toasts = alive
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade-hub", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	m.drawToasts()

	return RenderScreen(m.screen)
}

// drawToasts overlays active notices on the bottom rows of the screen.
func (m GameModel) drawToasts() {
	row := m.screen.Height() - 1
	for i := len(m.toasts) - 1; i >= 0 && row >= 0; i-- {
		text := " " + m.toasts[i].text + " "
		x := (m.screen.Width() - len(text)) / 2
		m.screen.DrawTextColored(x, row, text, core.ColorBrightYellow)
		row--
	}
}

// BackToMenu reports whether the player left the game for the hub menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a single game and reports whether
// the player wants to return to the hub menu afterwards.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	model := NewGameModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(GameModel); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
