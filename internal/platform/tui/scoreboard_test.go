package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blur/internal/storage"
)

func scoreboardStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, run := range []storage.Run{
		{SceneID: "counting", Score: 10, Ticks: 2700, TickRate: 30, Seed: 99},
		{SceneID: "counting", Score: 25, Ticks: 120, Seed: 7},
		{SceneID: "retired", Score: 5, Ticks: 60, Seed: 3},
	} {
		_, err := store.SaveRun(run)
		require.NoError(t, err)
	}
	return store
}

func scoreboardStep(t *testing.T, m ScoreboardModel, msgs ...tea.Msg) ScoreboardModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sb, ok := next.(ScoreboardModel)
		require.True(t, ok)
		m = sb
	}
	return m
}

func TestScoreboardBestShowsLengthAndSeed(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), 100, 30)

	require.Len(t, m.runs, 2)
	assert.Equal(t, 25, m.runs[0].Score, "best run first")

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Counting")
	assert.Contains(t, view, "Seed")
	assert.Contains(t, view, "99")
	assert.Contains(t, view, "1:30", "2700 ticks at 30/s")
	assert.Contains(t, view, "0:02", "120 ticks at the default rate")
	assert.NotContains(t, view, "retired")
}

func TestScoreboardRecentTab(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), 100, 30)

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabRecent, m.tab)
	require.Len(t, m.runs, 3)
	assert.Equal(t, "retired", m.runs[0].SceneID, "newest first")

	view := m.View()
	assert.Contains(t, view, "RECENT RUNS")
	assert.Contains(t, view, "retired", "unregistered scenes keep their ID")
	assert.Contains(t, view, "Counting")

	// Scene switching only applies to the Best tab.
	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Len(t, m.runs, 3)

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabBest, m.tab)
	assert.Len(t, m.runs, 2)
}

func TestScoreboardOpensRunDetail(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), 100, 30)

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.detail)
	assert.Equal(t, int64(99), m.detail.Seed)

	view := m.View()
	assert.Contains(t, view, "RUN "+m.detail.RunID.String())
	assert.Contains(t, view, "1:30 (2700 ticks at 30/s)")
	assert.Contains(t, view, "blur play counting --seed 99 --fps 30")

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.detail)
	assert.False(t, m.IsGoingBack(), "esc leaves the detail view first")

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsGoingBack())
	assert.Empty(t, m.View())
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	m = scoreboardStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, m.detail)
	assert.Contains(t, m.View(), "No scores recorded yet.")

	m = scoreboardStep(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
}

func TestReplayCommand(t *testing.T) {
	run := storage.ScoreEntry{SceneID: "turret", Seed: 42, TickRate: 30}
	assert.Equal(t, "blur play turret --seed 42 --fps 30", ReplayCommand(run))

	run.TickRate = 0
	assert.Equal(t, "blur play turret --seed 42 --fps 60", ReplayCommand(run))
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "0:00", formatLength(0))
	assert.Equal(t, "0:01", formatLength(1500*time.Millisecond))
	assert.Equal(t, "1:05", formatLength(65*time.Second))
	assert.Equal(t, "61:00", formatLength(time.Hour+time.Minute))
}
