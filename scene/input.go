package scene

import (
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/system"
)

// Action is an input the frontends translate keys into.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionWeapon1
	ActionWeapon2
	ActionWeapon3
	ActionWeapon4
	ActionWeapon5
	ActionToggleAutoFire
	// ActionFire pulls the trigger once; ignored while auto-fire is on.
	ActionFire
	ActionPause
)

// InputEvent is a key transition. Movement actions are held while Pressed;
// every other action triggers on press only.
type InputEvent struct {
	Action  Action
	Pressed bool
}

// HandleInput applies one input event. Unknown actions are ignored.
func (s *Scene) HandleInput(ev InputEvent) {
	w := s.world
	in := &w.Input

	switch ev.Action {
	case ActionMoveLeft:
		in.Left = ev.Pressed
		return
	case ActionMoveRight:
		in.Right = ev.Pressed
		return
	case ActionMoveUp:
		in.Up = ev.Pressed
		return
	case ActionMoveDown:
		in.Down = ev.Pressed
		return
	}

	if !ev.Pressed || w.Run.Over() {
		return
	}
	if ev.Action == ActionPause {
		w.Run.Paused = !w.Run.Paused
		return
	}
	if w.Run.Paused {
		return
	}

	p := w.Player
	switch ev.Action {
	case ActionWeapon1, ActionWeapon2, ActionWeapon3, ActionWeapon4, ActionWeapon5:
		p.Weapon = component.WeaponMode(ev.Action - ActionWeapon1)
	case ActionToggleAutoFire:
		p.AutoFire = !p.AutoFire
	case ActionFire:
		if !p.AutoFire && p.Health.IsAlive() {
			system.FireInto(w)
		}
	}
}
