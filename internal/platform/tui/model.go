package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/platform/crash"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

// Model is the Bubble Tea model that runs a single scene.
type Model struct {
	scene      registry.Scene
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	state      core.SceneState
	ticks      int
	err        error
	embedded   bool // Back returns to the menu instead of quitting
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a model for the given scene.
// A zero cfg.Seed is replaced by a time based seed.
func NewModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	return Model{
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("scene", scene.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the scene and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)
	m.logger.Debug("scene started", "seed", m.config.Seed, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if m.err != nil {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) || (m.err != nil && m.inputFrame.Has(core.ActionConfirm)) {
		m.saveRun()
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize resizes the buffer. The scene keeps its state and lays
// itself out against the new size on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveRun()
		if m.state.GameOver {
			m.config.Seed = time.Now().UnixNano()
		}
		m.scene.Reset(m.config)
		m.state = m.scene.State()
		m.ticks = 0
		m.runSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("scene restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	err := crash.Guard(func() {
		result := m.scene.Step(m.inputFrame)
		m.state = result.State
		m.scene.Render(m.screen)
	})
	m.inputFrame.Clear()

	if err != nil {
		m.err = err
		m.logger.Error("scene crashed", "error", err)
		return m, nil
	}

	if !m.state.Paused && !m.state.GameOver {
		m.ticks++
	}

	if m.state.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the current run once. Runs without score are dropped.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil || m.state.Score <= 0 {
		return
	}
	m.runSaved = true

	id, err := m.store.SaveRun(storage.Run{
		SceneID:  m.scene.ID(),
		Score:    m.state.Score,
		Ticks:    m.ticks,
		TickRate: m.config.TickRate,
		Seed:     m.config.Seed,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", id, "score", m.state.Score, "ticks", m.ticks)
}

// saveScreenshot writes the last rendered frame to ~/.blur/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	dir := filepath.Join(home, ".blur", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.scene.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View returns the last rendered frame, or the crash report.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		if r, ok := crash.AsReport(m.err); ok {
			return r.String() + "\n\nPress Enter or Esc to leave."
		}
		return m.err.Error()
	}

	return RenderScreen(m.screen)
}

// Err returns the crash that stopped the scene, if any.
func (m Model) Err() error {
	return m.err
}

// Ticks returns the simulated ticks of the current run.
func (m Model) Ticks() int {
	return m.ticks
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one scene.
// It returns the crash of the scene if it panicked.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(scene, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
