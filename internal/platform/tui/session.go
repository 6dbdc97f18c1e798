package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewScene
	viewScores
)

// SessionModel runs one SSH client: the menu, a scene picked from it, and
// the scoreboard, all inside a single Bubble Tea program.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	sessionID  uuid.UUID
	logger     *log.Logger
	view       sessionView
	menu       MenuModel
	scene      Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session for username. Its log lines carry the
// user and the first block of the session ID.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.New()
	short, _, _ := strings.Cut(id.String(), "-")

	return SessionModel{
		store:     store,
		config:    cfg,
		sessionID: id,
		logger:    logger.With("session", short, "user", username),
		menu:      NewMenuModel(store, cfg),
	}
}

// SessionID returns the unique id of the session.
func (m SessionModel) SessionID() uuid.UUID {
	return m.sessionID
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update forwards msg to the active view and switches views when it asks to.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = size.Width
		m.config.ScreenH = size.Height
	}

	switch m.view {
	case viewScene:
		return m.updateScene(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		id := m.menu.Selected().SceneID
		scene, err := registry.Create(id)
		if err != nil {
			m.logger.Error("cannot create scene", "scene", id, "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		m.config = m.menu.Config()
		m.config.Seed = 0
		m.scene = NewModel(scene, m.store, m.config, m.logger)
		m.scene.embedded = true
		m.view = viewScene
		m.logger.Debug("scene started", "scene", id)
		return m, m.scene.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scene.Update(msg)
	if scene, ok := next.(Model); ok {
		m.scene = scene
	}

	switch {
	case m.scene.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scene.BackToMenu():
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// toMenu rebuilds the menu so it shows runs saved since it was last open.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the active view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewScene:
		return m.scene.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
