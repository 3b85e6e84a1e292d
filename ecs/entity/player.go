package entity

import (
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/prefabs"
)

// NewPlayer places the craft at the bottom centre of the playfield, so its
// muzzle starts at (width/2, height-player height).
func NewPlayer(t *prefabs.Tuning, skin int) *component.Player {
	spec := t.Player
	if skin < 1 || skin > 3 {
		skin = 1
	}
	return &component.Player{
		Body: common.Rect{
			X:      t.Playfield.Width/2 - spec.Width/2,
			Y:      t.Playfield.Height - spec.Height,
			Width:  spec.Width,
			Height: spec.Height,
		},
		Speed:            spec.Speed,
		Health:           component.NewHealth(spec.MaxHP),
		Weapon:           component.WeaponSingle,
		FireDelay:        spec.FireDelay,
		InvincibleFrames: spec.InvincibleFrames,
		BlinkFrames:      spec.BlinkFrames,
		Visible:          true,
		Skin:             skin,
	}
}
