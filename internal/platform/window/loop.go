package window

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blur/internal/core"
	"github.com/vovakirdan/blur/internal/platform/crash"
	"github.com/vovakirdan/blur/internal/registry"
	"github.com/vovakirdan/blur/internal/storage"
)

// loop owns the scene side of the window: reset, fixed steps and run saving.
// It knows nothing about Ebitengine.
type loop struct {
	scene  registry.Scene
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	cfg    core.RuntimeConfig

	state core.SceneState
	ticks int
	saved bool
}

func newLoop(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *loop {
	return &loop{
		scene:  scene,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		cfg:    cfg,
	}
}

// start resets the scene and draws the first frame.
func (l *loop) start() error {
	return crash.Guard(func() {
		l.scene.Reset(l.cfg)
		l.state = l.scene.State()
		l.scene.Render(l.screen)
	})
}

// step applies one tick of input. done is set once the player quits.
func (l *loop) step(in core.InputFrame) (done bool, err error) {
	if in.Has(core.ActionQuit) {
		l.saveRun()
		return true, nil
	}

	if in.Has(core.ActionRestart) {
		l.saveRun()
		if l.state.GameOver {
			l.cfg.Seed = time.Now().UnixNano()
		}
		l.ticks = 0
		l.saved = false
		return false, l.start()
	}

	if err := crash.Guard(func() {
		l.state = l.scene.Step(in).State
		l.scene.Render(l.screen)
	}); err != nil {
		return false, err
	}

	if !l.state.Paused && !l.state.GameOver {
		l.ticks++
	}
	if l.state.GameOver {
		l.saveRun()
	}
	return false, nil
}

func (l *loop) saveRun() {
	if l.saved || l.store == nil || l.state.Score <= 0 {
		return
	}
	l.saved = true

	id, err := l.store.SaveRun(storage.Run{
		SceneID:  l.scene.ID(),
		Score:    l.state.Score,
		Ticks:    l.ticks,
		TickRate: l.cfg.TickRate,
		Seed:     l.cfg.Seed,
	})
	if err != nil {
		l.logger.Warn("could not save run", "error", err)
		return
	}
	l.logger.Info("run saved", "run", id, "score", l.state.Score)
}
