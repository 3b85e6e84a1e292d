package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/prefabs"
	"github.com/milk9111/skyraid/scene"
)

// holdTimeout releases a movement key when the terminal stops repeating
// it. Terminals report presses only, never releases.
const holdTimeout = 150 * time.Millisecond

var opposite = map[scene.Action]scene.Action{
	scene.ActionMoveLeft:  scene.ActionMoveRight,
	scene.ActionMoveRight: scene.ActionMoveLeft,
	scene.ActionMoveUp:    scene.ActionMoveDown,
	scene.ActionMoveDown:  scene.ActionMoveUp,
}

type App struct {
	screen     tcell.Screen
	scene      *scene.Scene
	sound      *Sound
	watcher    *prefabs.Watcher
	tuningName string

	held map[scene.Action]time.Time
	quit bool
}

// Run drives the scene at roughly 60 ticks per second until the user quits
// and returns the final score.
func (a *App) Run() int {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / common.TicksPerSecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-events:
			a.handleEvent(ev)
		case now := <-ticker.C:
			a.step(now)
		}
	}
	return a.scene.Snapshot().Score
}

func (a *App) step(now time.Time) {
	if a.watcher != nil {
		a.scene.PollReload(a.watcher, a.tuningName)
	}
	for action, at := range a.held {
		if now.Sub(at) > holdTimeout {
			a.scene.HandleInput(scene.InputEvent{Action: action, Pressed: false})
			delete(a.held, action)
		}
	}

	a.scene.Tick()
	for _, ev := range a.scene.Events() {
		a.sound.Play(ev.Kind)
	}

	snap := a.scene.Snapshot()
	draw(a.screen, &snap)
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			a.quit = true
			return
		}
		action, ok := keyAction(ev)
		if !ok {
			return
		}
		if other, isMove := opposite[action]; isMove {
			if _, down := a.held[other]; down {
				a.scene.HandleInput(scene.InputEvent{Action: other, Pressed: false})
				delete(a.held, other)
			}
			a.held[action] = time.Now()
		}
		a.scene.HandleInput(scene.InputEvent{Action: action, Pressed: true})
	}
}

func keyAction(ev *tcell.EventKey) (scene.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return scene.ActionMoveLeft, true
	case tcell.KeyRight:
		return scene.ActionMoveRight, true
	case tcell.KeyUp:
		return scene.ActionMoveUp, true
	case tcell.KeyDown:
		return scene.ActionMoveDown, true
	case tcell.KeyEscape:
		return scene.ActionPause, true
	case tcell.KeyRune:
	default:
		return scene.ActionNone, false
	}

	switch r := ev.Rune(); r {
	case 'a':
		return scene.ActionMoveLeft, true
	case 'd':
		return scene.ActionMoveRight, true
	case 'w':
		return scene.ActionMoveUp, true
	case 's':
		return scene.ActionMoveDown, true
	case '1', '2', '3', '4', '5':
		return scene.ActionWeapon1 + scene.Action(r-'1'), true
	case 'f':
		return scene.ActionToggleAutoFire, true
	case ' ':
		return scene.ActionFire, true
	case 'p':
		return scene.ActionPause, true
	}
	return scene.ActionNone, false
}
