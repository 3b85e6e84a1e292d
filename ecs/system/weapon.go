package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/prefabs"
)

// Fire returns the burst for the player's current weapon mode, or nil while
// the cooldown is running. A successful burst restarts the cooldown.
func Fire(p *component.Player, weapons *prefabs.WeaponsSpec) []component.Bullet {
	if p == nil || weapons == nil || !p.ReadyToFire() {
		return nil
	}
	p.FireCooldown = p.FireDelay
	return Burst(p.Weapon, p.Muzzle(), weapons)
}

// Burst builds the projectiles one trigger pull of mode emits from muzzle.
func Burst(mode component.WeaponMode, muzzle cp.Vector, weapons *prefabs.WeaponsSpec) []component.Bullet {
	switch mode {
	case component.WeaponSingle:
		return []component.Bullet{straight(component.BulletSingle, muzzle, &weapons.Single)}
	case component.WeaponTriple:
		spec := &weapons.Triple
		out := make([]component.Bullet, 0, 3)
		for slot := -1; slot <= 1; slot++ {
			at := muzzle.Add(cp.Vector{X: float64(slot) * spec.Stride})
			out = append(out, straight(component.BulletTriple, at, spec))
		}
		return out
	case component.WeaponSpread:
		return fan(component.BulletSpread, muzzle, &weapons.Spread)
	case component.WeaponHeavy:
		return []component.Bullet{straight(component.BulletHeavy, muzzle, &weapons.Heavy)}
	case component.WeaponHeavySpread:
		return fan(component.BulletHeavySpread, muzzle, &weapons.HeavySpread)
	}
	return nil
}

func straight(kind component.BulletKind, at cp.Vector, spec *prefabs.ProjectileSpec) component.Bullet {
	return component.Bullet{
		Kind:   kind,
		Pos:    at,
		Vel:    cp.Vector{X: 0, Y: -spec.Speed},
		Width:  spec.Width,
		Height: spec.Height,
		Damage: spec.Damage,
	}
}

// fan emits one bullet per configured angle; 0 degrees is straight up and
// positive angles lean right.
func fan(kind component.BulletKind, at cp.Vector, spec *prefabs.ProjectileSpec) []component.Bullet {
	out := make([]component.Bullet, 0, len(spec.Angles))
	for _, deg := range spec.Angles {
		b := straight(kind, at, spec)
		if deg != 0 {
			b.Vel = cp.ForAngle(common.DegToRad(deg - 90)).Mult(spec.Speed)
		}
		b.Angle = deg
		out = append(out, b)
	}
	return out
}

// AutoFireSystem pulls the trigger every tick the cooldown allows while
// auto-fire is on.
type AutoFireSystem struct{}

func NewAutoFireSystem() *AutoFireSystem {
	return &AutoFireSystem{}
}

func (s *AutoFireSystem) Update(w *ecs.World) {
	if w == nil || w.Player == nil || !w.Player.AutoFire || !w.Player.Health.IsAlive() {
		return
	}
	FireInto(w)
}

// FireInto fires the player's weapon and queues the burst. It reports
// whether anything was emitted.
func FireInto(w *ecs.World) bool {
	bullets := Fire(w.Player, &w.Tuning.Weapons)
	if len(bullets) == 0 {
		return false
	}
	w.AddBullets(bullets)
	muzzle := w.Player.Muzzle()
	w.Emit(ecs.Event{Kind: ecs.EventWeaponFired, X: muzzle.X, Y: muzzle.Y, Value: len(bullets)})
	return true
}
