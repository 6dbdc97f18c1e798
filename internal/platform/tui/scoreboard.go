package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

const (
	bestLimit   = 100
	recentLimit = 50
)

// scoreTab selects which runs the scoreboard lists.
type scoreTab int

const (
	tabBest   scoreTab = iota // Top runs of one scene
	tabRecent                 // Latest runs of every scene
)

func (t scoreTab) String() string {
	if t == tabRecent {
		return "Recent"
	}
	return "Best"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevScene key.Binding
	NextScene key.Binding
	Tab       key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScene, k.Tab, k.Open, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevScene, k.NextScene},
		{k.Tab, k.Open, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		PrevScene: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "prev scene")),
		NextScene: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "next scene")),
		Tab:       key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "best/recent")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run details")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	scoreTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(8)
)

// ScoreboardModel lists stored runs. The Best tab ranks one scene, the
// Recent tab shows the latest runs of all scenes, and Enter opens the
// selected run with the command that replays it.
type ScoreboardModel struct {
	scenes   []registry.SceneInfo
	scene    int
	tab      scoreTab
	store    *storage.Store
	runs     []storage.ScoreEntry
	detail   *storage.ScoreEntry
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a scoreboard showing the best runs of the
// first registered scene.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		scenes: registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// sceneID is the scene shown on the Best tab.
func (m ScoreboardModel) sceneID() string {
	if len(m.scenes) == 0 {
		return ""
	}
	return m.scenes[m.scene].ID
}

// sceneTitle maps a stored scene ID to its registered title.
func (m ScoreboardModel) sceneTitle(id string) string {
	for _, s := range m.scenes {
		if s.ID == id {
			return s.Title
		}
	}
	return id
}

// reload fetches the runs for the current tab and rebuilds the table.
func (m *ScoreboardModel) reload() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil {
		if m.tab == tabRecent {
			m.runs, m.loadErr = m.store.RecentRuns(recentLimit)
		} else if id := m.sceneID(); id != "" {
			m.runs, m.loadErr = m.store.TopScores(id, bestLimit)
		}
	}
	m.table = m.newTable()
}

func (m ScoreboardModel) newTable() table.Model {
	first := table.Column{Title: "#", Width: 5}
	if m.tab == tabRecent {
		first = table.Column{Title: "Scene", Width: 12}
	}
	columns := []table.Column{
		first,
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Run", Width: 9},
		{Title: "Played", Width: 12},
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		lead := fmt.Sprintf("%d", i+1)
		if m.tab == tabRecent {
			lead = m.sceneTitle(r.SceneID)
		}
		rows[i] = table.Row{
			lead,
			fmt.Sprintf("%d", r.Score),
			formatLength(r.Duration()),
			fmt.Sprintf("%d", r.Seed),
			shortID(r),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	// Title, tabs, frame and help take ten rows.
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.newTable()
		m.table.SetCursor(cursor)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.detail != nil {
			if key.Matches(msg, m.keys.Back, m.keys.Open) {
				m.detail = nil
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ScoreboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.tab = 1 - m.tab
		m.reload()

	case key.Matches(msg, m.keys.NextScene, m.keys.PrevScene):
		if m.tab != tabBest || len(m.scenes) < 2 {
			return m, nil
		}
		step := 1
		if key.Matches(msg, m.keys.PrevScene) {
			step = len(m.scenes) - 1
		}
		m.scene = (m.scene + step) % len(m.scenes)
		m.reload()

	case key.Matches(msg, m.keys.Open):
		m.openSelected()

	case key.Matches(msg, m.keys.Up, m.keys.Down):
		m.table, cmd = m.table.Update(msg)
	}

	return m, cmd
}

// openSelected reloads the highlighted run by ID so the detail view shows
// what is stored now, not what the table was built from.
func (m *ScoreboardModel) openSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.runs) {
		return
	}
	run, err := m.store.RunByID(m.runs[i].RunID)
	if err != nil {
		m.loadErr = err
		return
	}
	m.detail = run
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	if m.detail != nil {
		return m.viewDetail(*m.detail)
	}

	title := "RECENT RUNS"
	if m.tab == tabBest {
		title = "HIGH SCORES"
		if len(m.scenes) > 0 {
			title = fmt.Sprintf("HIGH SCORES - %s", m.scenes[m.scene].Title)
		}
	}

	tabs := make([]string, 0, 2)
	for _, t := range []scoreTab{tabBest, tabRecent} {
		style := tabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}

	var body string
	switch {
	case m.loadErr != nil:
		body = dimStyle.Render("Could not load runs: " + m.loadErr.Error())
	case len(m.runs) == 0:
		body = dimStyle.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nPlay a scene to set a high score!")
	default:
		body = m.table.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		scoreTitleStyle.Render(title),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		frameStyle.Render(body),
		dimStyle.Render(m.help.View(m.keys)),
	)
}

func (m ScoreboardModel) viewDetail(run storage.ScoreEntry) string {
	rate := run.TickRate
	if rate <= 0 {
		rate = storage.DefaultTickRate
	}

	field := func(label, value string) string {
		return labelStyle.Render(label) + value
	}
	lines := []string{
		field("Scene", m.sceneTitle(run.SceneID)),
		field("Score", fmt.Sprintf("%d", run.Score)),
		field("Length", fmt.Sprintf("%s (%d ticks at %d/s)", formatLength(run.Duration()), run.Ticks, rate)),
		field("Seed", fmt.Sprintf("%d", run.Seed)),
		field("Played", run.CreatedAt.Format("2006-01-02 15:04")),
		"",
		field("Replay", ReplayCommand(run)),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		scoreTitleStyle.Render("RUN "+run.RunID.String()),
		"",
		frameStyle.Render(strings.Join(lines, "\n")),
		dimStyle.Render("esc: back to list  q: quit"),
	)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

// ReplayCommand is the CLI invocation that replays a stored run.
func ReplayCommand(run storage.ScoreEntry) string {
	rate := run.TickRate
	if rate <= 0 {
		rate = storage.DefaultTickRate
	}
	return fmt.Sprintf("blur play %s --seed %d --fps %d", run.SceneID, run.Seed, rate)
}

// formatLength renders a run length as m:ss.
func formatLength(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// shortID returns the first block of the run UUID.
func shortID(run storage.ScoreEntry) string {
	id := run.RunID.String()
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
