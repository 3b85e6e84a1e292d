package component

import (
	"fmt"

	"github.com/milk9111/skyraid/common"
)

type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyHazard
	EnemyFighter
	EnemyBoss
)

var enemyKindNames = [...]string{
	EnemyBasic:   "basic",
	EnemyHazard:  "hazard",
	EnemyFighter: "fighter",
	EnemyBoss:    "boss",
}

func (k EnemyKind) String() string {
	if k < 0 || int(k) >= len(enemyKindNames) {
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
	return enemyKindNames[k]
}

// Enemy is any hostile actor. Kind selects the behavior; only the state
// block matching Kind is set.
type Enemy struct {
	Kind   EnemyKind
	Body   common.Rect
	Health Health

	// Speed is horizontal speed for bouncing kinds and fall speed for
	// hazards. Dir is the horizontal heading, -1 or 1.
	Speed float64
	Dir   float64

	Basic   *BasicState
	Fighter *FighterState
	Boss    *BossState
}

type BasicState struct {
	StepDown float64
}

type FighterState struct {
	Drift         float64
	ShootCooldown int
	ShootDelay    int
}

type BossState struct {
	VerticalSpeed  float64
	VDir           float64
	BandTop        float64
	BandBottom     float64
	ActionCooldown int
	ActionDelay    int
	// Entered is set once the boss has descended into its band.
	Entered bool
}

func (e *Enemy) Dead() bool {
	return e.Health.Current <= 0
}

func (e *Enemy) TakeDamage(amount int) bool {
	return e.Health.ApplyDamage(amount)
}

func (e *Enemy) HPRatio() float64 {
	return e.Health.Ratio()
}

// MaxHPFor returns the level-scaled hit points of an enemy kind. Hazards do
// not scale. Levels outside 1..MaxLevel are a caller bug.
func MaxHPFor(kind EnemyKind, level, hazardHP int) int {
	MustLevel(level)
	switch kind {
	case EnemyBasic:
		return level
	case EnemyHazard:
		return hazardHP
	case EnemyFighter:
		return level * 2
	case EnemyBoss:
		return level * 100
	}
	panic(fmt.Sprintf("component: unknown enemy kind %d", int(kind)))
}

// MustLevel panics when level is outside the playable range.
func MustLevel(level int) {
	if level < 1 || level > common.MaxLevel {
		panic(fmt.Sprintf("component: level %d outside 1..%d", level, common.MaxLevel))
	}
}
