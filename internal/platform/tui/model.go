package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	sound      SoundPlayer
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // Nil disables score saving
	Sound  SoundPlayer    // Nil plays nothing
	Logger *log.Logger    // Nil uses the default logger
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sound := opts.Sound
	if sound == nil {
		sound = &silentPlayer{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sound:      sound,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("round started", "game", m.game.ID(), "difficulty", m.game.Difficulty(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionMute) {
		muted := m.sound.ToggleMute()
		m.logger.Debug("sound toggled", "muted", muted)
	}

	return m, nil
}

// handleResize processes window resize events.
// The round keeps running; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, cue := range result.Cues {
		m.sound.Play(cue)
	}

	// A restart clears the game over flag; allow the next round to be saved.
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.logger.Debug("round restarted", "game", m.game.ID())
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRound()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRound records the finished round. Rounds without points are not kept.
func (m *Model) saveRound() {
	m.logger.Info("round finished",
		"won", m.gameState.Won,
		"score", m.gameState.Score,
		"popped", m.game.Removed(),
		"elapsed", m.game.Elapsed(),
	)

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	_, err := m.store.SaveScore(storage.Round{
		Difficulty: m.game.Difficulty(),
		Score:      m.gameState.Score,
		Won:        m.gameState.Won,
		Spheres:    m.game.Removed(),
		Duration:   m.game.Elapsed(),
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := screenshotDir()
	if err != nil {
		m.logger.Warn("could not resolve screenshot directory", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// screenshotDir returns ~/.popper/screenshots.
func screenshotDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".popper", "screenshots"), nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Aim follows the mouse
	)

	_, err := p.Run()
	return err
}
