package component

import "fmt"

// BossAction is one of the moves the boss picks from when its action timer
// fires.
type BossAction int

const (
	BossShoot BossAction = iota
	BossScatter
	BossVolley
	BossDropHazard
	BossSummon
)

var bossActionNames = [...]string{
	BossShoot:      "shoot",
	BossScatter:    "scatter",
	BossVolley:     "volley",
	BossDropHazard: "drop_hazard",
	BossSummon:     "summon",
}

func BossActions() []BossAction {
	return []BossAction{BossShoot, BossScatter, BossVolley, BossDropHazard, BossSummon}
}

func (a BossAction) String() string {
	if a < 0 || int(a) >= len(bossActionNames) {
		return fmt.Sprintf("BossAction(%d)", int(a))
	}
	return bossActionNames[a]
}

func ParseBossAction(s string) (BossAction, bool) {
	for i, name := range bossActionNames {
		if name == s {
			return BossAction(i), true
		}
	}
	return 0, false
}

// BossOutcome is the closed set of results a boss action produces. The
// scene merges each variant into the matching collection.
type BossOutcome interface {
	bossOutcome()
}

type BulletsOutcome struct {
	Bullets []Bullet
}

type HazardsOutcome struct {
	Hazards []Enemy
}

type ReinforcementOutcome struct {
	Enemy Enemy
}

type NoOutcome struct{}

func (BulletsOutcome) bossOutcome()       {}
func (HazardsOutcome) bossOutcome()       {}
func (ReinforcementOutcome) bossOutcome() {}
func (NoOutcome) bossOutcome()            {}
