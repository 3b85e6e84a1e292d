package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/prefabs"
	"github.com/milk9111/skyraid/scene"
)

// shakeFrames is how long the view shakes after the player is hit.
const shakeFrames = 12

type keyBinding struct {
	action scene.Action
	keys   []ebiten.Key
}

// held bindings report press and release; the rest trigger on press.
var (
	heldBindings = []keyBinding{
		{scene.ActionMoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{scene.ActionMoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		{scene.ActionMoveUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
		{scene.ActionMoveDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	}
	pressBindings = []keyBinding{
		{scene.ActionWeapon1, []ebiten.Key{ebiten.Key1}},
		{scene.ActionWeapon2, []ebiten.Key{ebiten.Key2}},
		{scene.ActionWeapon3, []ebiten.Key{ebiten.Key3}},
		{scene.ActionWeapon4, []ebiten.Key{ebiten.Key4}},
		{scene.ActionWeapon5, []ebiten.Key{ebiten.Key5}},
		{scene.ActionToggleAutoFire, []ebiten.Key{ebiten.KeyF}},
		{scene.ActionFire, []ebiten.Key{ebiten.KeySpace}},
		{scene.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}},
	}
)

type Game struct {
	scene      *scene.Scene
	watcher    *prefabs.Watcher
	tuningName string
	overlay    *Overlay

	snap  scene.Snapshot
	shake int
	quit  bool
}

func NewGame(s *scene.Scene, tuningName string, watcher *prefabs.Watcher) *Game {
	g := &Game{
		scene:      s,
		watcher:    watcher,
		tuningName: tuningName,
	}
	g.overlay = NewOverlay(g)
	g.snap = s.Snapshot()
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.watcher != nil {
		g.scene.PollReload(g.watcher, g.tuningName)
	}

	g.pollKeys()
	g.scene.Tick()

	for _, ev := range g.scene.Events() {
		if ev.Kind == ecs.EventPlayerHit {
			g.shake = shakeFrames
		}
	}
	if g.shake > 0 {
		g.shake--
	}

	g.snap = g.scene.Snapshot()
	g.overlay.Update(&g.snap)
	return nil
}

func (g *Game) pollKeys() {
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.scene.HandleInput(scene.InputEvent{Action: b.action, Pressed: true})
			}
			if inpututil.IsKeyJustReleased(k) && !anyPressed(b.keys) {
				g.scene.HandleInput(scene.InputEvent{Action: b.action, Pressed: false})
			}
		}
	}
	for _, b := range pressBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				g.scene.HandleInput(scene.InputEvent{Action: b.action, Pressed: true})
			}
		}
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) Resume() {
	if g.snap.Paused {
		g.scene.HandleInput(scene.InputEvent{Action: scene.ActionPause, Pressed: true})
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, &g.snap, g.shake)
	drawHUD(screen, &g.snap)
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
