package entity

import (
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/prefabs"
)

// NewExplosion is the effect left where an enemy died. Bosses get the big
// one.
func NewExplosion(t *prefabs.Tuning, cx, cy float64, boss bool) component.Explosion {
	spec := t.Effects
	size := spec.ExplosionSize
	if boss {
		size = spec.BossExplosionSize
	}
	return component.Explosion{
		X:        cx,
		Y:        cy,
		Size:     size,
		Growth:   spec.Growth,
		Lifetime: spec.Lifetime,
	}
}
