//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blur/internal/core"
)

// binding maps keys to an action. Held bindings fire on every tick the key
// is down; the rest fire once per press.
type binding struct {
	keys   []ebiten.Key
	action core.Action
	held   bool
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionTurnLeft, true},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionTurnRight, true},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionUp, false},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionDown, false},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionFire, false},
	{[]ebiten.Key{ebiten.KeyM, ebiten.KeyTab}, core.ActionMode, false},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyBracketRight, ebiten.KeyNumpadAdd}, core.ActionMore, false},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyBracketLeft, ebiten.KeyNumpadSubtract}, core.ActionFewer, false},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm, false},
	{[]ebiten.Key{ebiten.KeyP}, core.ActionPause, false},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit, false},
}

// buildFrame collects the actions of one tick.
func buildFrame(pressed, justPressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		check := justPressed
		if b.held {
			check = pressed
		}
		for _, k := range b.keys {
			if check(k) {
				frame.Set(b.action)
				break
			}
		}
	}
	return frame
}
