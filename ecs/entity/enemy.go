package entity

import (
	"math/rand"

	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/prefabs"
)

func randomDir(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// RandIntRange returns an int in [lo, hi].
func RandIntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// NewBasic bounces sideways and steps down on each wall bounce.
func NewBasic(t *prefabs.Tuning, rng *rand.Rand, level int, x, y float64) component.Enemy {
	spec := t.Enemies.Basic
	return component.Enemy{
		Kind:   component.EnemyBasic,
		Body:   common.Rect{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		Health: component.NewHealth(component.MaxHPFor(component.EnemyBasic, level, 0)),
		Speed:  spec.Speed,
		Dir:    randomDir(rng),
		Basic:  &component.BasicState{StepDown: spec.StepDown},
	}
}

// NewHazard falls straight down at a speed rolled per instance.
func NewHazard(t *prefabs.Tuning, rng *rand.Rand, level int, x, y float64) component.Enemy {
	spec := t.Enemies.Hazard
	return component.Enemy{
		Kind:   component.EnemyHazard,
		Body:   common.Rect{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		Health: component.NewHealth(component.MaxHPFor(component.EnemyHazard, level, spec.HP)),
		Speed:  randRange(rng, spec.MinSpeed, spec.MaxSpeed),
	}
}

func NewFighter(t *prefabs.Tuning, rng *rand.Rand, level int, x, y float64) component.Enemy {
	spec := t.Enemies.Fighter
	return component.Enemy{
		Kind:   component.EnemyFighter,
		Body:   common.Rect{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		Health: component.NewHealth(component.MaxHPFor(component.EnemyFighter, level, 0)),
		Speed:  spec.Speed,
		Dir:    randomDir(rng),
		Fighter: &component.FighterState{
			Drift:      spec.Drift,
			ShootDelay: RandIntRange(rng, spec.MinShootDelay, spec.MaxShootDelay),
		},
	}
}

func NewBoss(t *prefabs.Tuning, level int, x, y float64) component.Enemy {
	spec := t.Enemies.Boss
	return component.Enemy{
		Kind:   component.EnemyBoss,
		Body:   common.Rect{X: x, Y: y, Width: spec.Width, Height: spec.Height},
		Health: component.NewHealth(component.MaxHPFor(component.EnemyBoss, level, 0)),
		Speed:  spec.Speed,
		Dir:    1,
		Boss: &component.BossState{
			VerticalSpeed: spec.VerticalSpeed,
			VDir:          1,
			BandTop:       spec.BandTop,
			BandBottom:    spec.BandBottom,
			ActionDelay:   spec.ActionDelay,
		},
	}
}

// New builds an enemy of the given kind. Bosses ignore rng.
func New(kind component.EnemyKind, t *prefabs.Tuning, rng *rand.Rand, level int, x, y float64) component.Enemy {
	switch kind {
	case component.EnemyBasic:
		return NewBasic(t, rng, level, x, y)
	case component.EnemyHazard:
		return NewHazard(t, rng, level, x, y)
	case component.EnemyFighter:
		return NewFighter(t, rng, level, x, y)
	case component.EnemyBoss:
		return NewBoss(t, level, x, y)
	}
	panic("entity: unknown enemy kind " + kind.String())
}
