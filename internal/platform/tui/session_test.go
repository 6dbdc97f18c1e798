package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

func init() {
	registry.Register("counting", func() registry.Scene { return &countingScene{} })
}

func sessionStep(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.(SessionModel).Update(msg)
	}
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out
}

func TestMenuListsRegisteredScenes(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	require.NotEmpty(t, m.Items())
	assert.Equal(t, "counting", m.Items()[0].SceneID)
	assert.Contains(t, m.View(), "B L U R")
	assert.Contains(t, m.View(), "Counting")
}

func TestSessionMenuToSceneAndBack(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester", quietLogger())
	assert.NotEqual(t, uuid.Nil, m.SessionID())

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, viewScene, m.view)
	assert.True(t, m.scene.embedded)

	m = sessionStep(t, m, TickMsg{})
	assert.Contains(t, m.View(), "counting")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "Select a scene")
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester", quietLogger())

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, viewScores, m.view)
	assert.Contains(t, m.View(), "HIGH SCORES - Counting")
	assert.Contains(t, m.View(), "No scores recorded yet.")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewMenu, m.view)
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester", quietLogger())

	m = sessionStep(t, m, runeKey('q'))
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestMenuShowsSceneRecord(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.SaveRun(storage.Run{SceneID: "counting", Score: 12, Ticks: 1800})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{SceneID: "counting", Score: 40, Ticks: 1800})
	require.NoError(t, err)

	cfg := core.DefaultConfig()
	m := NewMenuModel(store, cfg)

	require.NotEmpty(t, m.Items())
	item := m.Items()[0]
	assert.Equal(t, storage.SceneStats{Runs: 2, Best: 40, Ticks: 3600}, item.Stats)
	assert.Equal(t, time.Minute, item.Played(60))

	view := m.View()
	assert.Contains(t, view, "Played")
	assert.Regexp(t, `> Counting\s+40\s+2\s+1:00`, view)
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	next, _ := m.Update(runeKey('k'))
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)

	assert.Equal(t, len(m.Items())-1, m.cursor)
}
