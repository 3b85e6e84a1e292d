package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/skyraid/common"
)

// Faction decides which collision pair a projectile takes part in.
type Faction int

const (
	FactionPlayer Faction = iota + 1
	FactionEnemy
)

type BulletKind int

const (
	BulletSingle BulletKind = iota
	BulletTriple
	BulletSpread
	BulletHeavy
	BulletHeavySpread
	BulletEnemy
	BulletBossScatter
)

var bulletKindNames = [...]string{
	BulletSingle:      "single",
	BulletTriple:      "triple",
	BulletSpread:      "spread",
	BulletHeavy:       "heavy",
	BulletHeavySpread: "heavy_spread",
	BulletEnemy:       "enemy",
	BulletBossScatter: "boss_scatter",
}

func (k BulletKind) String() string {
	if k < 0 || int(k) >= len(bulletKindNames) {
		return "unknown"
	}
	return bulletKindNames[k]
}

func (k BulletKind) Faction() Faction {
	if k == BulletEnemy || k == BulletBossScatter {
		return FactionEnemy
	}
	return FactionPlayer
}

// Heavy bullets are drawn as pulsing orbs.
func (k BulletKind) Heavy() bool {
	return k == BulletHeavy || k == BulletHeavySpread
}

// Bullet is a projectile. Pos is the top-left corner of its box; the box
// size and damage are fixed at creation.
type Bullet struct {
	Kind   BulletKind
	Pos    cp.Vector
	Vel    cp.Vector
	Width  float64
	Height float64
	Damage int
	// Angle is the launch angle in degrees from straight ahead.
	Angle float64
	Age   int
	// Consumed marks a bullet that hit something this tick; the sweep
	// removes it.
	Consumed bool
}

func (b *Bullet) Side() Faction {
	return b.Kind.Faction()
}

func (b *Bullet) Box() common.Rect {
	return common.Rect{X: b.Pos.X, Y: b.Pos.Y, Width: b.Width, Height: b.Height}
}

func (b *Bullet) Advance() {
	b.Pos = b.Pos.Add(b.Vel)
	b.Age++
}

// Hit is the damage dealt on contact; unset damage counts as 1.
func (b *Bullet) Hit() int {
	if b.Damage <= 0 {
		return 1
	}
	return b.Damage
}
