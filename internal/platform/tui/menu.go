package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-popper/internal/core"
	"github.com/vovakirdan/tui-popper/internal/storage"
)

// MenuItemKind is what selecting a menu entry does.
type MenuItemKind int

const (
	MenuItemPlay MenuItemKind = iota
	MenuItemScores
	MenuItemQuit
)

// MenuItem represents a selectable entry in the title menu.
type MenuItem struct {
	Kind       MenuItemKind
	Title      string
	Difficulty string // Preset name for MenuItemPlay
}

// DefaultMenuItems returns the title menu entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Kind: MenuItemPlay, Title: "Play - Easy", Difficulty: "easy"},
		{Kind: MenuItemPlay, Title: "Play - Normal", Difficulty: "normal"},
		{Kind: MenuItemPlay, Title: "Play - Hard", Difficulty: "hard"},
		{Kind: MenuItemScores, Title: "High Scores"},
		{Kind: MenuItemQuit, Title: "Quit"},
	}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int // Best score across all difficulties, 0 if none
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem // Set when user selects an entry
}

// NewMenuModel creates a new menu model. The cursor starts on the entry
// matching difficulty when there is one.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty string) MenuModel {
	items := DefaultMenuItems()
	cursor := 0
	for i, it := range items {
		if it.Kind == MenuItemPlay && it.Difficulty == difficulty {
			cursor = i
		}
	}

	best := 0
	if store != nil {
		if hs, err := store.HighScore(""); err == nil {
			best = hs
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Kind == MenuItemQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		selected := MenuItem{Kind: MenuItemScores, Title: "High Scores"}
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  P O P P E R  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pop the chain before it reaches the pit", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.best > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. ANSI styling is not counted.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// resultFrom converts a finished menu model into a MenuResult.
func resultFrom(m MenuModel) MenuResult {
	result := MenuResult{Config: m.Config()}

	sel := m.Selected()
	switch {
	case m.IsQuitting() || sel == nil:
		result.Quit = true
	case sel.Kind == MenuItemScores:
		result.WantsScoreboard = true
	default:
		result.Difficulty = sel.Difficulty
	}
	return result
}

// RunMenu runs the title menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return resultFrom(m), nil
}
