package system

import (
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs"
)

// PlayerControllerSystem moves the craft from the held input state and
// counts down its fire cooldown and invincibility.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || w.Player == nil {
		return
	}
	p := w.Player
	field := w.Tuning.Playfield

	dx, dy := w.Input.Axis()
	p.Body.X = common.Clamp(p.Body.X+dx*p.Speed, 0, field.Width-p.Body.Width)
	p.Body.Y = common.Clamp(p.Body.Y+dy*p.Speed, 0, field.Height-p.Body.Height)

	p.TickTimers()
}
