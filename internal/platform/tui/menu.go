package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blur/internal/buildinfo"
	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

// MenuItem is a registered scene together with its stored record.
type MenuItem struct {
	SceneID string
	Title   string
	Stats   storage.SceneStats
}

// Played is the total simulated time across the scene's runs.
func (i MenuItem) Played(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = storage.DefaultTickRate
	}
	return time.Duration(i.Stats.Ticks) * time.Second / time.Duration(tickRate)
}

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	quitting   bool
	selected   *MenuItem
	scoreboard bool
}

// NewMenuModel creates a menu listing every registered scene with the best
// score and run count kept in store.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	scenes := registry.List()
	items := make([]MenuItem, len(scenes))

	for i, s := range scenes {
		items[i] = MenuItem{SceneID: s.ID, Title: s.Title}
		if store == nil {
			continue
		}
		if st, err := store.Stats(s.ID); err == nil {
			items[i].Stats = st
		}
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update moves the cursor and records what the player picked.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the scene list as a table of records, centered on screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	nameW := len("Scene")
	for _, item := range m.items {
		nameW = max(nameW, lipgloss.Width(item.Title))
	}
	row := func(cursor, name, best, runs, played string) string {
		return fmt.Sprintf("%s %-*s  %7s  %5s  %7s", cursor, nameW, name, best, runs, played)
	}

	lines := []string{dimStyle.Render(row(" ", "Scene", "Best", "Runs", "Played"))}
	for i, item := range m.items {
		best, played := "-", "-"
		if item.Stats.Runs > 0 {
			best = fmt.Sprintf("%d", item.Stats.Best)
			played = formatLength(item.Played(m.config.TickRate))
		}
		runs := fmt.Sprintf("%d", item.Stats.Runs)
		if i == m.cursor {
			lines = append(lines, menuCursorStyle.Render(row(">", item.Title, best, runs, played)))
		} else {
			lines = append(lines, menuRowStyle.Render(row(" ", item.Title, best, runs, played)))
		}
	}
	if len(m.items) == 0 {
		lines = append(lines, dimStyle.Render("No scenes registered."))
	}

	panel := lipgloss.JoinVertical(lipgloss.Center,
		scoreTitleStyle.Render("B L U R"),
		dimStyle.Render(buildinfo.Short()),
		"",
		"Select a scene",
		frameStyle.Render(strings.Join(lines, "\n")),
		dimStyle.Render("up/down: move  enter: play  tab: scores  q: quit"),
	)

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return panel
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, panel)
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Selected is the scene picked with Enter, nil until then.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports a quit or back key.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports that Tab was pressed.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config is the runtime config with the latest terminal size.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult is what RunMenu hands back to the CLI loop.
type MenuResult struct {
	SceneID         string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu full screen until the player picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.SceneID = m.Selected().SceneID
	}
	return result, nil
}
