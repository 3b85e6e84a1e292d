package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/ecs/entity"
	"github.com/milk9111/skyraid/prefabs"
)

// behavior is the per-kind movement and attack rule. act may be nil for
// kinds that never attack.
type behavior struct {
	move func(t *prefabs.Tuning, e *component.Enemy)
	act  func(s *EnemySystem, w *ecs.World, e *component.Enemy)
}

var behaviors = [...]behavior{
	component.EnemyBasic:   {move: moveBasic},
	component.EnemyHazard:  {move: moveHazard},
	component.EnemyFighter: {move: moveFighter, act: actFighter},
	component.EnemyBoss:    {move: moveBoss, act: actBoss},
}

// EnemySystem moves every enemy and merges whatever fighters and the boss
// emit this tick.
type EnemySystem struct {
	Brain *BossBrain
}

func NewEnemySystem(brain *BossBrain) *EnemySystem {
	if brain == nil {
		brain = &BossBrain{}
	}
	return &EnemySystem{Brain: brain}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Enemies.Each(func(_ ecs.Entity, enemy *component.Enemy) {
		if enemy.Dead() {
			return
		}
		b := behaviors[enemy.Kind]
		b.move(w.Tuning, enemy)
		if b.act != nil {
			b.act(s, w, enemy)
		}
	})
}

// bounce reverses Dir when the body touches a side wall and reports whether
// it did.
func bounce(fieldWidth float64, e *component.Enemy) bool {
	maxX := fieldWidth - e.Body.Width
	switch {
	case e.Body.X <= 0:
		e.Body.X = 0
	case e.Body.X >= maxX:
		e.Body.X = maxX
	default:
		return false
	}
	e.Dir = -e.Dir
	return true
}

func moveBasic(t *prefabs.Tuning, e *component.Enemy) {
	e.Body.X += e.Speed * e.Dir
	if bounce(t.Playfield.Width, e) && e.Basic != nil {
		e.Body.Y += e.Basic.StepDown
	}
}

func moveHazard(_ *prefabs.Tuning, e *component.Enemy) {
	e.Body.Y += e.Speed
}

func moveFighter(t *prefabs.Tuning, e *component.Enemy) {
	e.Body.X += e.Speed * e.Dir
	if e.Fighter != nil {
		e.Body.Y += e.Fighter.Drift
	}
	bounce(t.Playfield.Width, e)
}

func moveBoss(t *prefabs.Tuning, e *component.Enemy) {
	e.Body.X += e.Speed * e.Dir
	bounce(t.Playfield.Width, e)

	b := e.Boss
	if b == nil {
		return
	}
	if !b.Entered {
		e.Body.Y += b.VerticalSpeed
		if e.Body.Y >= b.BandTop {
			e.Body.Y = b.BandTop
			b.Entered = true
		}
		return
	}
	e.Body.Y += b.VerticalSpeed * b.VDir
	switch {
	case e.Body.Y <= b.BandTop:
		e.Body.Y = b.BandTop
		b.VDir = 1
	case e.Body.Y >= b.BandBottom:
		e.Body.Y = b.BandBottom
		b.VDir = -1
	}
}

// FighterReady advances the fighter's reload and reports whether it fires
// this tick. Each reload rolls a fresh delay.
func FighterReady(w *ecs.World, e *component.Enemy) bool {
	f := e.Fighter
	if f == nil {
		return false
	}
	f.ShootCooldown++
	if f.ShootCooldown < f.ShootDelay {
		return false
	}
	f.ShootCooldown = 0
	spec := w.Tuning.Enemies.Fighter
	f.ShootDelay = entity.RandIntRange(w.Rand, spec.MinShootDelay, spec.MaxShootDelay)
	return true
}

func actFighter(_ *EnemySystem, w *ecs.World, e *component.Enemy) {
	if !FighterReady(w, e) {
		return
	}
	w.AddBullet(EnemyBullet(&w.Tuning.Bullets.Enemy, cp.Vector{X: e.Body.CenterX(), Y: e.Body.Bottom()}))
}

func actBoss(s *EnemySystem, w *ecs.World, e *component.Enemy) {
	if !s.Brain.Ready(e) {
		return
	}
	action := s.Brain.Choose(w.Rand, e, w.Run.Level)
	MergeOutcome(w, s.Brain.Resolve(action, e, w.Tuning, w.Rand, w.Run.Level))
}

// MergeOutcome adds a boss action's products to the world.
func MergeOutcome(w *ecs.World, outcome component.BossOutcome) {
	switch o := outcome.(type) {
	case component.BulletsOutcome:
		w.AddBullets(o.Bullets)
	case component.HazardsOutcome:
		for _, h := range o.Hazards {
			w.AddEnemy(h)
		}
	case component.ReinforcementOutcome:
		w.AddEnemy(o.Enemy)
	case component.NoOutcome, nil:
	default:
		panic("system: unhandled boss outcome")
	}
}

// EnemyBullet is a straight downward shot whose box starts at at.
func EnemyBullet(spec *prefabs.ProjectileSpec, at cp.Vector) component.Bullet {
	return component.Bullet{
		Kind:   component.BulletEnemy,
		Pos:    at,
		Vel:    cp.Vector{X: 0, Y: spec.Speed},
		Width:  spec.Width,
		Height: spec.Height,
		Damage: spec.Damage,
	}
}
