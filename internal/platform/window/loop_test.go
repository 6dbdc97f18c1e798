package window

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/platform/crash"
	"github.com/vovakirdan/blur/internal/storage"
)

// tallyScene scores on Fire, ends after endAfter steps and can panic on render.
type tallyScene struct {
	steps       int
	endAfter    int
	panicRender bool
	state       core.SceneState
}

func (s *tallyScene) ID() string    { return "tally" }
func (s *tallyScene) Title() string { return "Tally" }

func (s *tallyScene) Reset(core.RuntimeConfig) {
	s.steps = 0
	s.state = core.SceneState{}
}

func (s *tallyScene) Step(in core.InputFrame) core.StepResult {
	s.steps++
	if in.Has(core.ActionFire) {
		s.state.Score++
	}
	if s.endAfter > 0 && s.steps >= s.endAfter {
		s.state.GameOver = true
	}
	return core.StepResult{State: s.state}
}

func (s *tallyScene) Render(dst *core.Screen) {
	if s.panicRender {
		var cells []core.Cell
		_ = cells[3]
	}
	dst.Clear()
	dst.DrawText(0, 0, "tally")
}

func (s *tallyScene) State() core.SceneState { return s.state }

func testLoop(t *testing.T, scene *tallyScene, store *storage.Store) *loop {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 30, Seed: 11}
	return newLoop(scene, store, cfg, log.NewWithOptions(io.Discard, log.Options{}))
}

func TestLoopStartRendersFirstFrame(t *testing.T) {
	l := testLoop(t, &tallyScene{}, nil)

	require.NoError(t, l.start())
	assert.Equal(t, "tally", l.screen.Row(0)[:5])
}

func TestLoopStartRecoversRenderPanic(t *testing.T) {
	l := testLoop(t, &tallyScene{panicRender: true}, nil)

	err := l.start()
	require.Error(t, err)

	report, ok := crash.AsReport(err)
	require.True(t, ok)
	assert.Contains(t, report.Function, "tallyScene")
	assert.True(t, strings.HasSuffix(report.Function, ".Render"), "function %q", report.Function)
	assert.Contains(t, report.Reason, "index out of range")
}

func TestLoopQuitAndRestart(t *testing.T) {
	scene := &tallyScene{}
	l := testLoop(t, scene, nil)
	require.NoError(t, l.start())

	done, err := l.step(core.InputOf(core.ActionFire))
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 1, l.ticks)

	done, err = l.step(core.InputOf(core.ActionRestart))
	require.NoError(t, err)
	assert.False(t, done)
	assert.Zero(t, l.ticks)
	assert.Zero(t, l.state.Score)
	assert.Equal(t, int64(11), l.cfg.Seed, "seed is kept while the run is alive")

	done, err = l.step(core.InputOf(core.ActionQuit))
	require.NoError(t, err)
	assert.True(t, done)
}

func TestLoopSavesRunWithTickRate(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	l := testLoop(t, &tallyScene{endAfter: 3}, store)
	require.NoError(t, l.start())

	for range 5 {
		_, err := l.step(core.InputOf(core.ActionFire))
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "tally", runs[0].SceneID)
	assert.Equal(t, 3, runs[0].Score)
	assert.Equal(t, 2, runs[0].Ticks)
	assert.Equal(t, 30, runs[0].TickRate)
	assert.Equal(t, int64(11), runs[0].Seed)
}
